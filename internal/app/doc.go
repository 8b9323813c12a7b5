// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the validation lifecycle: loading the
// project file, validating every root in parallel, rendering the results and
// publishing them, decoupled from any specific entrypoint like a CLI.
package app

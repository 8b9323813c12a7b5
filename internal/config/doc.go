// Package config defines the format-agnostic project configuration for
// ppcheck: which files to validate when a directory is given, where to look
// for include targets, which macros are predefined, and where diagnostics are
// published in addition to the console.
//
// The Model is produced by a Loader; the HCL implementation lives in the hcl
// package.
package config

// Package validator walks a source file and everything it includes,
// validating preprocessor directives and macro references without expanding
// anything.
//
// Each file gets its own scope: a macro table whose inherited view is a
// snapshot of the includer's local macros taken at the include directive,
// the chain of ancestor paths used to stop cyclic and duplicate inclusion,
// and the set of files it successfully included. Data only crosses scope
// boundaries by copy, at scope creation and when an include returns, so one
// Validate call is plain depth-first recursion with no shared mutable state.
//
// Diagnostics of an included file are always merged into the includer. An
// included file with errors additionally produces an error at the include
// directive, and its macros are merged upward regardless.
package validator

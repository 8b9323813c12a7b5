// Package diag defines the diagnostic records produced while validating
// preprocessor sources and the Result that aggregates them.
//
// A Result keeps errors and warnings in one ordered slice, tagged by Kind, so
// that reports preserve the order in which problems were discovered across
// the include chain. Only errors make a Result invalid.
package diag

// Package includegraph records which files included which while a validation
// run walks the include chain.
//
// The store is a reporting aid: cycle and duplicate detection during
// validation never consult it and rely on each file's ancestor chain instead.
// Nodes are canonical file paths and edges point from the including file to
// the included one, keeping the order in which include directives appeared.
//
// All Store methods are safe for concurrent use, so one store can be shared
// by several roots validated in parallel.
package includegraph

// Package resolver checks macro references on a line of source without
// expanding them.
//
// Resolution runs in two phases over the (continuation-joined) content.
// Phase A repeatedly takes the leftmost NAME(args) whose argument list holds
// no nested parentheses, validates it against the symbol table, and replaces
// the matched span with an inert placeholder so enclosing calls become
// matchable next. The first problem found in phase A ends resolution for the
// content. Phase B then walks the remaining identifiers and cross-checks the
// shape of known macros: constants may not be followed by '(' and functions
// must be. Unknown bare identifiers are not reported.
//
// Calls whose arguments contain parenthesised expressions that are not
// themselves macro calls cannot be matched by phase A; they fall through to
// phase B.
package resolver

// Package source loads preprocessor source files and resolves include
// targets to canonical, comparison-stable paths.
package source

// Package report renders validation results for people and machines. The
// text and JSON renderers write to an io.Writer; publishers push the same
// per-root payloads to external services configured in the project file.
package report

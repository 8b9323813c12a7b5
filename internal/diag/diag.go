package diag

import (
	"fmt"
)

// Kind is the severity of a Diagnostic.
type Kind int

const (
	Error Kind = iota
	Warning
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind as its lowercase name for structured reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic is a single finding tied to a source location. Line is 1-based.
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	File    string `json:"file"`
	Line    int    `json:"line"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Kind, d.Message)
}

// Result collects the diagnostics of one validation run.
type Result struct {
	diags []Diagnostic
}

// New returns an empty, valid Result.
func New() *Result {
	return &Result{}
}

// AddError records an error at file:line.
func (r *Result) AddError(msg, file string, line int) {
	r.diags = append(r.diags, Diagnostic{Kind: Error, Message: msg, File: file, Line: line})
}

// AddWarning records a warning at file:line.
func (r *Result) AddWarning(msg, file string, line int) {
	r.diags = append(r.diags, Diagnostic{Kind: Warning, Message: msg, File: file, Line: line})
}

// Merge appends every diagnostic of other, preserving its order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.diags = append(r.diags, other.diags...)
}

// IsValid reports whether no errors were recorded.
func (r *Result) IsValid() bool {
	for _, d := range r.diags {
		if d.Kind == Error {
			return false
		}
	}
	return true
}

// Diagnostics returns a copy of all diagnostics in discovery order.
func (r *Result) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Errors returns the error diagnostics in discovery order.
func (r *Result) Errors() []Diagnostic {
	return r.filter(Error)
}

// Warnings returns the warning diagnostics in discovery order.
func (r *Result) Warnings() []Diagnostic {
	return r.filter(Warning)
}

func (r *Result) filter(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.diags {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

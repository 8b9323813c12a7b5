package report

import (
	"fmt"
	"io"

	"github.com/vk/ppcheck/internal/diag"
)

// FileReport is the outcome of validating one root file. Err is set when the
// root could not be validated at all, in which case Result is nil.
type FileReport struct {
	Root   string
	Result *diag.Result
	Err    error
}

// Valid reports whether the root was validated and produced no errors.
func (r *FileReport) Valid() bool {
	return r.Err == nil && r.Result != nil && r.Result.IsValid()
}

// Summary totals a set of reports.
type Summary struct {
	Roots    int `json:"roots"`
	Failed   int `json:"failed"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts roots, failures and diagnostics. A root that could not be
// validated counts as failed but adds no diagnostics.
func Summarize(reports []*FileReport) Summary {
	var s Summary
	for _, r := range reports {
		s.Roots++
		if !r.Valid() {
			s.Failed++
		}
		if r.Result != nil {
			s.Errors += len(r.Result.Errors())
			s.Warnings += len(r.Result.Warnings())
		}
	}
	return s
}

// Renderer writes reports in one output format.
type Renderer interface {
	Render(w io.Writer, reports []*FileReport) error
}

// NewRenderer returns the renderer for format, "text" or "json".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return Text{}, nil
	case "json":
		return JSON{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

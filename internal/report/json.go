package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/ppcheck/internal/diag"
)

// JSON renders all reports as a single document.
type JSON struct {
	Indent string
}

type jsonDocument struct {
	Valid   bool        `json:"valid"`
	Summary Summary     `json:"summary"`
	Roots   []*rootJSON `json:"roots"`
}

// rootJSON is the wire shape of one root, shared with the publishers.
type rootJSON struct {
	Root        string            `json:"root"`
	Valid       bool              `json:"valid"`
	Error       string            `json:"error,omitempty"`
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
}

func newRootJSON(r *FileReport) *rootJSON {
	out := &rootJSON{
		Root:        r.Root,
		Valid:       r.Valid(),
		Diagnostics: []diag.Diagnostic{},
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	if r.Result != nil {
		out.Diagnostics = append(out.Diagnostics, r.Result.Diagnostics()...)
	}
	return out
}

// Render implements Renderer.
func (j JSON) Render(w io.Writer, reports []*FileReport) error {
	doc := jsonDocument{
		Summary: Summarize(reports),
		Roots:   make([]*rootJSON, 0, len(reports)),
	}
	for _, r := range reports {
		doc.Roots = append(doc.Roots, newRootJSON(r))
	}
	doc.Valid = doc.Summary.Failed == 0

	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

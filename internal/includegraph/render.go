package includegraph

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Render writes the include tree below root, one file per line, indented by
// depth. Paths are shown relative to root's directory when possible. A file
// that reappears on its own branch is printed once more and marked as a
// cycle instead of being expanded.
func Render(ctx context.Context, w io.Writer, s Store, root string) error {
	base := filepath.Dir(root)
	return render(ctx, w, s, root, base, 0, map[string]bool{})
}

func render(ctx context.Context, w io.Writer, s Store, path, base string, depth int, onBranch map[string]bool) error {
	name := path
	if rel, err := filepath.Rel(base, path); err == nil {
		name = rel
	}
	indent := strings.Repeat("  ", depth)
	if onBranch[path] {
		_, err := fmt.Fprintf(w, "%s%s (cycle)\n", indent, name)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, name); err != nil {
		return err
	}

	edges, err := s.IncludesOf(ctx, path)
	if err != nil {
		return err
	}
	onBranch[path] = true
	defer delete(onBranch, path)
	for _, e := range edges {
		if err := render(ctx, w, s, e.To, base, depth+1, onBranch); err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"bufio"
	"fmt"
	"io"
)

// Text renders one block per root: a status header followed by the
// warnings, then the errors, in the order they were found.
type Text struct{}

// Render implements Renderer.
func (Text) Render(w io.Writer, reports []*FileReport) error {
	bw := bufio.NewWriter(w)
	for _, r := range reports {
		switch {
		case r.Err != nil:
			fmt.Fprintf(bw, "%s: failed: %v\n", r.Root, r.Err)
			continue
		case r.Result == nil:
			continue
		}

		warnings, errs := r.Result.Warnings(), r.Result.Errors()
		status := "ok"
		if len(errs) > 0 {
			status = "invalid"
		}
		fmt.Fprintf(bw, "%s: %s (%s, %s)\n", r.Root, status,
			plural(len(errs), "error"), plural(len(warnings), "warning"))
		for _, d := range warnings {
			fmt.Fprintf(bw, "  %s\n", d)
		}
		for _, d := range errs {
			fmt.Fprintf(bw, "  %s\n", d)
		}
	}

	s := Summarize(reports)
	fmt.Fprintf(bw, "%d of %d roots failed, %s, %s\n", s.Failed, s.Roots,
		plural(s.Errors, "error"), plural(s.Warnings, "warning"))
	return bw.Flush()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

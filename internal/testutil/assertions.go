package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/ppcheck/internal/diag"
)

// Messages returns the messages of diags, in order.
func Messages(diags []diag.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

// RequireDiagnostic checks that result holds exactly one diagnostic of kind
// whose message contains substr, and returns it.
func RequireDiagnostic(t *testing.T, result *diag.Result, kind diag.Kind, substr string) diag.Diagnostic {
	t.Helper()

	var matches []diag.Diagnostic
	for _, d := range result.Diagnostics() {
		if d.Kind == kind && strings.Contains(d.Message, substr) {
			matches = append(matches, d)
		}
	}
	require.Len(t, matches, 1,
		"expected exactly one %s containing %q, got diagnostics:\n%s", kind, substr, strings.Join(Messages(result.Diagnostics()), "\n"),
	)
	return matches[0]
}

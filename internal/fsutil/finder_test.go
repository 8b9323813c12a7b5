package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/ppcheck/internal/testutil"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteTree(t, map[string]string{
		"init.sqf":            "",
		"lib/macros.HPP":      "",
		"lib/readme.md":       "",
		"lib/deep/fn.sqf":     "",
		".git/hooks/post.sqf": "",
	})

	// --- Act ---
	got, err := FindFilesByExtension(dir, ".sqf", ".hpp")

	// --- Assert ---
	require.NoError(t, err)
	want := []string{
		filepath.Join(dir, "init.sqf"),
		filepath.Join(dir, "lib", "deep", "fn.sqf"),
		filepath.Join(dir, "lib", "macros.HPP"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandRoots_KeepsOrderAndPlainFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteTree(t, map[string]string{
		"z.txt":     "",
		"src/a.sqf": "",
		"src/b.sqf": "",
	})
	missing := filepath.Join(dir, "missing.sqf")

	// --- Act ---
	got, err := ExpandRoots([]string{
		filepath.Join(dir, "z.txt"),
		filepath.Join(dir, "src"),
		missing,
	}, ".sqf")

	// --- Assert ---
	require.NoError(t, err)
	want := []string{
		filepath.Join(dir, "z.txt"),
		filepath.Join(dir, "src", "a.sqf"),
		filepath.Join(dir, "src", "b.sqf"),
		missing,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", diff)
	}
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/ppcheck/internal/config"
	"github.com/vk/ppcheck/internal/hcl"
	"github.com/vk/ppcheck/internal/report"
	"github.com/vk/ppcheck/internal/testutil"
)

// runApp builds an App for cfg and runs it, returning the summary and the
// rendered output.
func runApp(t *testing.T, cfg Config) (report.Summary, string) {
	t.Helper()

	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	a, err := NewApp(out, logs, appConfig, hcl.NewLoader())
	require.NoError(t, err)

	summary, err := a.Run(context.Background())
	require.NoError(t, err, "logs:\n%s", logs.String())
	return summary, out.String()
}

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Workers: 1})
	require.Error(t, err)

	_, err = NewConfig(Config{Paths: []string{"a.sqf"}})
	require.Error(t, err)

	_, err = NewConfig(Config{Paths: []string{"a.sqf"}, Workers: 1, Format: "xml"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{Paths: []string{"a.sqf"}, Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
}

func TestRun_ReportsRootsInInputOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteTree(t, map[string]string{
		"a.sqf": testutil.Lines(`#include "missing.hpp"`),
		"b.sqf": testutil.Lines("x = 1;"),
		"c.sqf": testutil.Lines("#define A 1", "#define A 2"),
		"d.sqf": testutil.Lines("y = 2;"),
	})
	paths := []string{
		filepath.Join(dir, "d.sqf"),
		filepath.Join(dir, "a.sqf"),
		filepath.Join(dir, "c.sqf"),
		filepath.Join(dir, "b.sqf"),
	}

	// --- Act ---
	summary, out := runApp(t, Config{Paths: paths, Format: "json", Workers: 2})

	// --- Assert ---
	assert.Equal(t, report.Summary{Roots: 4, Failed: 1, Errors: 1, Warnings: 1}, summary)

	var doc struct {
		Roots []struct {
			Root  string `json:"root"`
			Valid bool   `json:"valid"`
		} `json:"roots"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Roots, 4)
	for i, p := range paths {
		assert.Equal(t, p, doc.Roots[i].Root)
	}
	assert.False(t, doc.Roots[1].Valid)
}

func TestRun_ProjectMacrosArePredefined(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteTree(t, map[string]string{
		"main.sqf":        testutil.Lines("x = MAX(VERSION, 2);", "#undef DEBUG", `#include "lib.hpp"`),
		"include/lib.hpp": testutil.Lines("#define LIB 1"),
	})
	cfgPath := testutil.WriteConfig(t, dir, `
settings {
  include_dirs = ["include"]
}
macro "DEBUG" {}
macro "VERSION" {
  value = 3
}
macro "MAX" {
  params = ["a", "b"]
}
`)

	// --- Act ---
	summary, out := runApp(t, Config{
		Paths:          []string{filepath.Join(dir, "main.sqf")},
		ConfigPath:     cfgPath,
		ConfigRequired: true,
	})

	// --- Assert ---
	assert.Equal(t, report.Summary{Roots: 1}, summary, out)
}

func TestRun_DirectoryRootUsesExtensions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteTree(t, map[string]string{
		"src/a.sqf":   testutil.Lines("x = 1;"),
		"src/b.hpp":   testutil.Lines("#bogus"),
		"src/c.txt":   testutil.Lines("#bogus"),
		"src/d.other": testutil.Lines("#bogus"),
	})

	// --- Act ---
	summary, out := runApp(t, Config{
		Paths:      []string{filepath.Join(dir, "src")},
		Extensions: []string{".sqf", ".hpp"},
	})

	// --- Assert ---
	assert.Equal(t, 2, summary.Roots)
	assert.Equal(t, 1, summary.Errors)
	assert.Contains(t, out, `Directive error: Unknown directive "bogus"`)
}

func TestRun_MissingDefaultConfigIsIgnored(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteTree(t, map[string]string{"a.sqf": "x = 1;\n"})

	summary, _ := runApp(t, Config{
		Paths:      []string{filepath.Join(dir, "a.sqf")},
		ConfigPath: filepath.Join(dir, testutil.ConfigName),
	})

	assert.Equal(t, report.Summary{Roots: 1}, summary)
}

func TestNewApp_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteTree(t, nil)
	appConfig, err := NewConfig(Config{
		Paths:          []string{filepath.Join(dir, "a.sqf")},
		ConfigPath:     filepath.Join(dir, "custom.hcl"),
		ConfigRequired: true,
		Workers:        1,
	})
	require.NoError(t, err)

	// --- Act ---
	_, err = NewApp(&bytes.Buffer{}, &testutil.SafeBuffer{}, appConfig, hcl.NewLoader())

	// --- Assert ---
	require.ErrorIs(t, err, config.ErrNotFound)
}

func TestRun_MissingRootIsReportedNotFatal(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteTree(t, nil)

	summary, out := runApp(t, Config{Paths: []string{filepath.Join(dir, "gone.sqf")}})

	assert.Equal(t, report.Summary{Roots: 1, Failed: 1}, summary)
	assert.Contains(t, out, "gone.sqf: failed:")
}

func TestRun_Graph(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteTree(t, map[string]string{
		"main.sqf":  testutil.Lines(`#include "lib/a.hpp"`),
		"lib/a.hpp": testutil.Lines(`#include "b.hpp"`),
		"lib/b.hpp": testutil.Lines("#define B 1"),
	})

	// --- Act ---
	_, out := runApp(t, Config{Paths: []string{filepath.Join(dir, "main.sqf")}, Graph: true})

	// --- Assert ---
	assert.Contains(t, out, "\nmain.sqf\n  lib/a.hpp\n    lib/b.hpp\n")
}

func TestInitProject(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteTree(t, nil)
	path := filepath.Join(dir, testutil.ConfigName)
	loader := hcl.NewLoader()

	// --- Act ---
	err := InitProject(path, loader)
	again := InitProject(path, loader)

	// --- Assert ---
	require.NoError(t, err)
	require.Error(t, again)
	assert.Contains(t, again.Error(), "refusing to overwrite")

	model, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, model.Macros, 2)
}

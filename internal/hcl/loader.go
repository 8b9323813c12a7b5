package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/ppcheck/internal/config"
	"github.com/vk/ppcheck/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// Load parses and decodes the project file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", config.ErrNotFound, path)
		}
		return nil, fmt.Errorf("error accessing config %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, file.Body, path)
}

// LoadSource decodes a project file held in memory. filename is used for
// diagnostics and to anchor relative include directories.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, file.Body, filename)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	evalCtx := newEvalContext(l.environ())
	conv := NewConverter()

	var root fileRoot
	if diags := gohcl.DecodeBody(body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := config.New()
	if root.Settings != nil {
		settings, err := translateSettings(root.Settings, filepath.Dir(path))
		if err != nil {
			return nil, err
		}
		model.Settings = settings
	}

	seen := make(map[string]bool)
	for _, m := range root.Macros {
		if seen[m.Name] {
			return nil, fmt.Errorf("macro %q is declared more than once in %s", m.Name, path)
		}
		seen[m.Name] = true

		def, err := translateMacro(ctx, conv, m, evalCtx)
		if err != nil {
			return nil, err
		}
		model.Macros = append(model.Macros, def)
	}

	for _, r := range root.Reporters {
		rep, err := translateReporter(ctx, r, evalCtx)
		if err != nil {
			return nil, err
		}
		model.Reporters = append(model.Reporters, rep)
	}

	logger.Debug("HCL loading complete.",
		"macros", len(model.Macros),
		"reporters", len(model.Reporters),
		"include_dirs", len(model.Settings.IncludeDirs),
	)
	return model, nil
}

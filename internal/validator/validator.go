package validator

import (
	"context"
	"fmt"

	"github.com/vk/ppcheck/internal/ctxlog"
	"github.com/vk/ppcheck/internal/diag"
	"github.com/vk/ppcheck/internal/includegraph"
	"github.com/vk/ppcheck/internal/macro"
	"github.com/vk/ppcheck/internal/source"
)

// Options configures a Validator. The zero value validates files from the
// local file system with no predefined macros.
type Options struct {
	Loader      source.Loader
	IncludeDirs []string
	// Predefined macros are visible to every root file as if its includer
	// had defined them.
	Predefined []*macro.Definition
	// Graph, when set, records every include that was followed.
	Graph includegraph.Store
}

// Validator validates root files. It holds no per-run state and may be used
// by several goroutines at once.
type Validator struct {
	loader     source.Loader
	resolver   *source.Resolver
	predefined map[string]*macro.Definition
	graph      includegraph.Store
}

// New creates a Validator.
func New(opts Options) *Validator {
	loader := opts.Loader
	if loader == nil {
		loader = source.NewFileLoader()
	}
	predefined := make(map[string]*macro.Definition, len(opts.Predefined))
	for _, def := range opts.Predefined {
		predefined[def.Name] = def
	}
	return &Validator{
		loader:     loader,
		resolver:   source.NewResolver(loader, opts.IncludeDirs...),
		predefined: predefined,
		graph:      opts.Graph,
	}
}

// Validate checks root and, recursively, every file it includes. A missing
// or unreadable root is returned as an error rather than a diagnostic.
func (v *Validator) Validate(ctx context.Context, root string) (*diag.Result, error) {
	path, err := v.loader.Canonical(root)
	if err != nil {
		return nil, err
	}
	if !v.loader.Exists(path) {
		return nil, fmt.Errorf("%w: %s", source.ErrNotFound, path)
	}
	ctxlog.FromContext(ctx).Debug("Validating root file.", "path", path)

	scope, err := v.validateFile(ctx, path, nil, v.predefined)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Root file validated.",
		"path", path,
		"errors", len(scope.result.Errors()),
		"warnings", len(scope.result.Warnings()),
		"included", len(scope.included),
	)
	return scope.result, nil
}

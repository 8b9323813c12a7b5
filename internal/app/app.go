package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/ppcheck/internal/config"
	"github.com/vk/ppcheck/internal/ctxlog"
	"github.com/vk/ppcheck/internal/includegraph"
	"github.com/vk/ppcheck/internal/macro"
	"github.com/vk/ppcheck/internal/report"
	"github.com/vk/ppcheck/internal/source"
	"github.com/vk/ppcheck/internal/validator"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	project    *config.Model
	loader     source.Loader
	validator  *validator.Validator
	graph      *includegraph.InMemory
	renderer   report.Renderer
	publishers []report.Publisher
	extensions []string
}

// NewApp is the constructor for the main application. Diagnostics are
// written to outW and logs to logW. It fails when the project file cannot be
// loaded or names an unsupported reporter.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	project, err := loadProject(ctx, appConfig, loader)
	if err != nil {
		return nil, err
	}

	includeDirs := make([]string, 0, len(appConfig.IncludeDirs)+len(project.Settings.IncludeDirs))
	for _, dir := range appConfig.IncludeDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve include dir %q: %w", dir, err)
		}
		includeDirs = append(includeDirs, abs)
	}
	includeDirs = append(includeDirs, project.Settings.IncludeDirs...)

	extensions := appConfig.Extensions
	if len(extensions) == 0 {
		extensions = project.Settings.Extensions
	}
	if len(extensions) == 0 {
		extensions = config.DefaultExtensions
	}

	renderer, err := report.NewRenderer(appConfig.Format)
	if err != nil {
		return nil, err
	}
	publishers, err := report.NewPublishers(project.Reporters)
	if err != nil {
		return nil, fmt.Errorf("failed to configure reporters: %w", err)
	}

	fileLoader := source.NewFileLoader()
	graph := includegraph.New()
	v := validator.New(validator.Options{
		Loader:      fileLoader,
		IncludeDirs: includeDirs,
		Predefined:  predefinedMacros(project.Macros),
		Graph:       graph,
	})
	logger.Debug("Validator configured.",
		"include_dirs", includeDirs,
		"predefined", len(project.Macros),
		"reporters", len(publishers),
	)

	return &App{
		outW:       outW,
		logger:     logger,
		config:     appConfig,
		project:    project,
		loader:     fileLoader,
		validator:  v,
		graph:      graph,
		renderer:   renderer,
		publishers: publishers,
		extensions: extensions,
	}, nil
}

// loadProject loads the project file. A missing file yields an empty model
// unless the user named it explicitly.
func loadProject(ctx context.Context, appConfig *Config, loader config.Loader) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	if appConfig.ConfigPath == "" || loader == nil {
		logger.Debug("No project file configured.")
		return config.New(), nil
	}

	project, err := loader.Load(ctx, appConfig.ConfigPath)
	switch {
	case err == nil:
		logger.Debug("Project file loaded.", "path", appConfig.ConfigPath)
		return project, nil
	case errors.Is(err, config.ErrNotFound) && !appConfig.ConfigRequired:
		logger.Debug("Project file not found, using defaults.", "path", appConfig.ConfigPath)
		return config.New(), nil
	default:
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
}

func predefinedMacros(defs []*config.MacroDefinition) []*macro.Definition {
	out := make([]*macro.Definition, 0, len(defs))
	for _, d := range defs {
		if d.Function {
			out = append(out, macro.NewFunction(d.Name, d.Params, d.Value, d.File, d.Line))
		} else {
			out = append(out, macro.NewConstant(d.Name, d.Value, d.File, d.Line))
		}
	}
	return out
}

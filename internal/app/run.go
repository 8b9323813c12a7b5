package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vk/ppcheck/internal/ctxlog"
	"github.com/vk/ppcheck/internal/fsutil"
	"github.com/vk/ppcheck/internal/includegraph"
	"github.com/vk/ppcheck/internal/report"
)

// Run validates every configured root, writes the report and publishes it to
// the configured reporters. Invalid sources are not an error; the returned
// summary tells the caller how the run went.
func (a *App) Run(ctx context.Context) (report.Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	roots, err := fsutil.ExpandRoots(a.config.Paths, a.extensions...)
	if err != nil {
		return report.Summary{}, err
	}
	if len(roots) == 0 {
		a.logger.Warn("No source files found.", "paths", a.config.Paths, "extensions", a.extensions)
	}

	reports, err := a.validateAll(ctx, roots)
	if err != nil {
		return report.Summary{}, err
	}

	if err := a.renderer.Render(a.outW, reports); err != nil {
		return report.Summary{}, fmt.Errorf("failed to write report: %w", err)
	}
	if a.config.Graph {
		if err := a.renderGraph(ctx, reports); err != nil {
			return report.Summary{}, fmt.Errorf("failed to write include graph: %w", err)
		}
	}

	for _, pub := range a.publishers {
		if err := pub.Publish(ctx, reports); err != nil {
			a.logger.Error("Failed to publish report.", "error", err)
		}
	}

	summary := report.Summarize(reports)
	a.logger.Debug("App.Run method finished.",
		"roots", summary.Roots,
		"failed", summary.Failed,
		"errors", summary.Errors,
		"warnings", summary.Warnings,
	)
	return summary, nil
}

// validateAll validates roots with at most Workers of them in flight. The
// reports keep the order of roots.
func (a *App) validateAll(ctx context.Context, roots []string) ([]*report.FileReport, error) {
	reports := make([]*report.FileReport, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Workers)
	for i, root := range roots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rctx := ctxlog.With(gctx, "root", root)
			result, err := a.validator.Validate(rctx, root)
			if err != nil {
				ctxlog.FromContext(rctx).Debug("Root could not be validated.", "error", err)
			}
			reports[i] = &report.FileReport{Root: root, Result: result, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (a *App) renderGraph(ctx context.Context, reports []*report.FileReport) error {
	if a.config.Format != "text" {
		a.logger.Warn("Include graph is only printed with the text format.")
		return nil
	}
	for _, r := range reports {
		if r.Err != nil {
			continue
		}
		root, err := a.loader.Canonical(r.Root)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.outW); err != nil {
			return err
		}
		if err := includegraph.Render(ctx, a.outW, a.graph, root); err != nil {
			return err
		}
	}
	return nil
}

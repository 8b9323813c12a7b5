package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vk/ppcheck/internal/app"
	"github.com/vk/ppcheck/internal/cli"
	"github.com/vk/ppcheck/internal/hcl"
)

// main is the entrypoint for the ppcheck application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitUsage)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()

	if appConfig.InitPath != "" {
		if err := app.InitProject(appConfig.InitPath, loader); err != nil {
			return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
		}
		fmt.Fprintf(outW, "Wrote %s\n", appConfig.InitPath)
		return nil
	}

	ppcheckApp, err := app.NewApp(outW, errW, appConfig, loader)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	summary, err := ppcheckApp.Run(ctx)
	if err != nil {
		return err
	}
	if summary.Failed > 0 || (appConfig.Strict && summary.Warnings > 0) {
		return &cli.ExitError{Code: cli.ExitInvalid}
	}
	return nil
}

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/ppcheck/internal/app"
)

// DefaultConfigPath is the project file looked up when -config is not given.
const DefaultConfigPath = ".ppcheck.hcl"

// Exit codes returned through ExitError.
const (
	ExitInvalid = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	if v == "" {
		return errors.New("value must not be empty")
	}
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("ppcheck", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ppcheck - A static validator for preprocessor directives and macro usage.

Usage:
  ppcheck [options] PATH...
  ppcheck -init PATH

Arguments:
  PATH
    A source file, or a directory whose files matching -ext are validated.

Options:
`)
		flagSet.PrintDefaults()
	}

	var includeDirs stringList
	configFlag := flagSet.String("config", DefaultConfigPath, "Path to the HCL project file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	formatFlag := flagSet.String("format", "text", "Report format. Options: 'text' or 'json'.")
	workersFlag := flagSet.Int("workers", 4, "Number of root files validated concurrently.")
	flagSet.Var(&includeDirs, "I", "Include search directory. May be repeated.")
	extFlag := flagSet.String("ext", "", "Comma-separated extensions used for directory paths, e.g. '.sqf,.hpp'.")
	graphFlag := flagSet.Bool("graph", false, "Print the include tree of every root after the report.")
	strictFlag := flagSet.Bool("strict", false, "Treat warnings as failures.")
	initFlag := flagSet.String("init", "", "Write a project file skeleton to the given path and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	configSet := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configSet = true
		}
	})

	if *initFlag == "" && flagSet.NArg() == 0 {
		slog.Debug("No paths provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Paths:          flagSet.Args(),
		ConfigPath:     *configFlag,
		ConfigRequired: configSet,
		IncludeDirs:    includeDirs,
		Extensions:     splitExtensions(*extFlag),
		Format:         strings.ToLower(*formatFlag),
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		Workers:        *workersFlag,
		Graph:          *graphFlag,
		Strict:         *strictFlag,
		InitPath:       *initFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitExtensions parses a comma-separated list, adding a leading dot where
// it is missing.
func splitExtensions(s string) []string {
	var out []string
	for _, ext := range strings.Split(s, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // root files or directories

	// ConfigPath names the project file. A missing file is only an error
	// when ConfigRequired is set.
	ConfigPath     string
	ConfigRequired bool

	IncludeDirs []string
	Extensions  []string

	Format    string
	LogFormat string
	LogLevel  string
	Workers   int
	Graph     bool
	Strict    bool

	// InitPath, when set, asks for a project file skeleton instead of a
	// validation run.
	InitPath string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InitPath != "" {
		return &cfg, nil
	}
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one path is required")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	switch cfg.Format {
	case "":
		cfg.Format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.Format)
	}
	return &cfg, nil
}

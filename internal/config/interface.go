package config

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by a Loader when the project file does not exist.
var ErrNotFound = errors.New("config file not found")

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the project configuration at path and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}

// SkeletonWriter writes a commented starter configuration.
type SkeletonWriter interface {
	WriteSkeleton(w io.Writer) error
}

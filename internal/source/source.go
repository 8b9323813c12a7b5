package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a file does not exist.
var ErrNotFound = errors.New("file not found")

// Loader reads source files. Implementations must return canonical paths that
// are stable under equality comparison.
type Loader interface {
	// Canonical returns the absolute, symlink-free form of path.
	Canonical(path string) (string, error)
	// Exists reports whether path names a regular file.
	Exists(path string) bool
	// Load returns the full text of the file at path.
	Load(path string) (string, error)
}

// FileLoader is the os-backed Loader.
type FileLoader struct{}

// NewFileLoader creates a Loader reading from the local file system.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Canonical makes path absolute and resolves symlinks when the file exists.
// A missing file keeps its cleaned absolute form.
func (l *FileLoader) Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("could not determine absolute path for %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, nil
		}
		return "", fmt.Errorf("could not resolve %s: %w", abs, err)
	}
	return resolved, nil
}

// Exists reports whether path is an existing regular file.
func (l *FileLoader) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load reads the file at path.
func (l *FileLoader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}
	return string(data), nil
}

// Lines splits text into physical lines, dropping carriage returns.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

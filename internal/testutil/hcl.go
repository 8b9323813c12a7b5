package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigName is the project file name the CLI looks for by default.
const ConfigName = ".ppcheck.hcl"

// WriteConfig writes an HCL project file into dir and returns its path.
func WriteConfig(t *testing.T, dir, src string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644), "failed to write config file")
	return path
}

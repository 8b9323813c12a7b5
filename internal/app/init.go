package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vk/ppcheck/internal/config"
)

// InitProject writes a project file skeleton to path. It never overwrites an
// existing file.
func InitProject(path string, writer config.SkeletonWriter) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("refusing to overwrite existing file %s", path)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return writer.WriteSkeleton(f)
}

package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"obenseuer-installer/internal/config"
	"obenseuer-installer/internal/logger"
)

// Uninstall deletes targets.Files and then targets.Directories (recursively) from installDir.
// Targets that are already gone are skipped. Any other failure is logged, the remaining
// targets are still processed, and all failures are returned together.
func Uninstall(installDir string, targets config.UninstallTargets) error {
	var errs []error

	for _, name := range targets.Files {
		path := filepath.Join(installDir, name)
		logger.Debug("[DEBUG] Attempting to remove %s\n", path)
		err := os.Remove(path)
		switch {
		case err == nil:
			logger.Info("[INFO] Removed %s\n", path)
		case errors.Is(err, os.ErrNotExist):
			logger.Debug("[DEBUG] %s does not exist, skipping\n", path)
		default:
			logger.Error("[ERROR] Failed to remove %s: %v\n", path, err)
			errs = append(errs, err)
		}
	}

	for _, name := range targets.Directories {
		path := filepath.Join(installDir, name)
		if _, err := os.Lstat(path); errors.Is(err, os.ErrNotExist) {
			logger.Debug("[DEBUG] %s does not exist, skipping\n", path)
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			logger.Error("[ERROR] Failed to remove directory %s: %v\n", path, err)
			errs = append(errs, err)
			continue
		}
		logger.Info("[INFO] Removed directory %s\n", path)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %d uninstall target(s) could not be removed: %w", ErrIO, len(errs), errors.Join(errs...))
	}
	return nil
}

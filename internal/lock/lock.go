// Package lock keeps two installer processes from working on the game folder at the same time.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"obenseuer-installer/internal/logger"
)

// ErrAlreadyRunning is returned when another process holds the lock.
var ErrAlreadyRunning = errors.New("another installer instance is already running")

// Lock is a held process lock.
type Lock struct {
	f *flock.Flock
}

// Path returns the lock file used for name in the system temp directory.
func Path(name string) string {
	return filepath.Join(os.TempDir(), name+".lock")
}

// Acquire takes the lock for name without blocking.
func Acquire(name string) (*Lock, error) {
	path := Path(name)
	f := flock.New(path)

	locked, err := f.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire process lock %s: %w", path, err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	logger.Debug("[DEBUG] Acquired process lock %s\n", path)
	return &Lock{f: f}, nil
}

// Release gives the lock back.
func (l *Lock) Release() error {
	if err := l.f.Unlock(); err != nil {
		return fmt.Errorf("failed to release process lock: %w", err)
	}
	return nil
}

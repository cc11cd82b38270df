// Package storefront resolves where a game is installed by asking the storefront
// client that manages it.
package storefront

import (
	"errors"
	"fmt"

	"obenseuer-installer/internal/logger"
)

var (
	// ErrClientUnavailable means the storefront client could not be initialized.
	ErrClientUnavailable = errors.New("storefront client unavailable")
	// ErrNotInstalled means the storefront reports the application as not installed.
	ErrNotInstalled = errors.New("application is not installed")
)

// Client is the subset of a storefront client the installer needs.
type Client interface {
	Initialize(appID uint32) error
	IsInstalled(appID uint32) bool
	InstallDirectory(appID uint32) (string, error)
	Shutdown()
}

// Resolve returns the install directory of appID.
// The client connection is only held for the duration of the call.
func Resolve(client Client, appID uint32) (string, error) {
	if err := client.Initialize(appID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrClientUnavailable, err)
	}
	defer client.Shutdown()

	if !client.IsInstalled(appID) {
		return "", fmt.Errorf("%w: app %d", ErrNotInstalled, appID)
	}

	dir, err := client.InstallDirectory(appID)
	if err != nil {
		return "", fmt.Errorf("failed to read install directory of app %d: %w", appID, err)
	}
	logger.Debug("[DEBUG] App %d is installed at %s\n", appID, dir)
	return dir, nil
}

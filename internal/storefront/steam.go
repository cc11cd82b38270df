package storefront

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"obenseuer-installer/internal/logger"
)

// SteamClient answers storefront queries from the files of a local Steam installation.
type SteamClient struct {
	roots     func() []string
	libraries []string
}

// NewSteamClient returns a client that looks for Steam in the platform's usual locations.
func NewSteamClient() *SteamClient {
	return &SteamClient{roots: candidateRoots}
}

// NewSteamClientAt returns a client that only considers the given Steam root directories.
func NewSteamClientAt(roots ...string) *SteamClient {
	return &SteamClient{roots: func() []string { return roots }}
}

// Initialize locates the Steam installation and reads its library folders.
func (c *SteamClient) Initialize(appID uint32) error {
	root, err := c.findRoot()
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Using Steam installation at %s for app %d\n", root, appID)

	libraries := []string{root}
	vdfPath := filepath.Join(root, "steamapps", "libraryfolders.vdf")
	f, err := os.Open(vdfPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Debug("[DEBUG] %s not found, only the Steam root library is searched\n", vdfPath)
	case err != nil:
		return fmt.Errorf("failed to open %s: %w", vdfPath, err)
	default:
		defer f.Close()
		extra, err := parseLibraryFolders(f)
		if err != nil {
			return fmt.Errorf("%s: %w", vdfPath, err)
		}
		for _, lib := range extra {
			if !contains(libraries, lib) {
				libraries = append(libraries, lib)
			}
		}
	}

	c.libraries = libraries
	logger.Debug("[DEBUG] Steam libraries: %v\n", libraries)
	return nil
}

// IsInstalled reports whether a library holds a fully installed manifest for appID.
func (c *SteamClient) IsInstalled(appID uint32) bool {
	_, m, err := c.findManifest(appID)
	if err != nil {
		logger.Debug("[DEBUG] App %d: %v\n", appID, err)
		return false
	}
	return m.installed()
}

// InstallDirectory returns <library>/steamapps/common/<installdir> for appID.
func (c *SteamClient) InstallDirectory(appID uint32) (string, error) {
	lib, m, err := c.findManifest(appID)
	if err != nil {
		return "", err
	}
	return filepath.Join(lib, "steamapps", "common", m.InstallDir), nil
}

// Shutdown forgets the library state read by Initialize.
func (c *SteamClient) Shutdown() {
	c.libraries = nil
}

func (c *SteamClient) findRoot() (string, error) {
	candidates := c.roots()
	for _, root := range candidates {
		if root == "" {
			continue
		}
		if info, err := os.Stat(filepath.Join(root, "steamapps")); err == nil && info.IsDir() {
			return root, nil
		}
	}
	return "", fmt.Errorf("no Steam installation found (looked in %v)", candidates)
}

func (c *SteamClient) findManifest(appID uint32) (string, appManifest, error) {
	if c.libraries == nil {
		return "", appManifest{}, errors.New("steam client is not initialized")
	}
	name := fmt.Sprintf("appmanifest_%d.acf", appID)
	for _, lib := range c.libraries {
		path := filepath.Join(lib, "steamapps", name)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		m, err := parseAppManifest(f)
		f.Close()
		if err != nil {
			return "", appManifest{}, fmt.Errorf("%s: %w", path, err)
		}
		return lib, m, nil
	}
	return "", appManifest{}, fmt.Errorf("%s not found in any Steam library", name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if filepath.Clean(v) == filepath.Clean(s) {
			return true
		}
	}
	return false
}

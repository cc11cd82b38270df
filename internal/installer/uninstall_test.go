package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obenseuer-installer/internal/config"
)

func defaultTargets(t *testing.T) config.UninstallTargets {
	t.Helper()
	p, err := config.DefaultProfile()
	require.NoError(t, err)
	return p.Uninstall
}

func assertNoTargets(t *testing.T, dir string, targets config.UninstallTargets) {
	t.Helper()
	for _, name := range append(append([]string{}, targets.Files...), targets.Directories...) {
		_, err := os.Lstat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err), "%s should be gone", name)
	}
}

func TestUninstallRemovesTargets(t *testing.T) {
	dir := t.TempDir()
	targets := defaultTargets(t)
	for _, name := range targets.Files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "BepInEx", "plugins", "SomeMod"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BepInEx", "plugins", "SomeMod", "mod.dll"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Obenseuer.exe"), []byte("game"), 0o644))

	require.NoError(t, Uninstall(dir, targets))

	assertNoTargets(t, dir, targets)
	assert.Equal(t, "game", readFile(t, filepath.Join(dir, "Obenseuer.exe")))
}

func TestUninstallIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	targets := defaultTargets(t)

	require.NoError(t, Uninstall(dir, targets))
	require.NoError(t, Uninstall(dir, targets))
}

func TestUninstallPartialTargets(t *testing.T) {
	dir := t.TempDir()
	targets := defaultTargets(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "winhttp.dll"), []byte("x"), 0o644))

	require.NoError(t, Uninstall(dir, targets))
	assertNoTargets(t, dir, targets)
}

func TestUninstallContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	targets := defaultTargets(t)

	// A non-empty directory where a file is expected cannot be removed with a plain delete.
	blocker := filepath.Join(dir, "changelog.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(blocker, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doorstop_config.ini"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "BepInEx", "core"), 0o755))

	err := Uninstall(dir, targets)
	require.ErrorIs(t, err, ErrIO)

	_, statErr := os.Stat(blocker)
	assert.NoError(t, statErr, "the failing target is left in place")
	_, statErr = os.Stat(filepath.Join(dir, "doorstop_config.ini"))
	assert.True(t, os.IsNotExist(statErr), "later files are still removed")
	_, statErr = os.Stat(filepath.Join(dir, "BepInEx"))
	assert.True(t, os.IsNotExist(statErr), "the directory is still removed")
}

func TestInstallThenUninstallLeavesOnlyExtras(t *testing.T) {
	dir := t.TempDir()
	targets := defaultTargets(t)
	archive := writeArchive(t, dir, "bepinex-temp.zip", buildZip(t, bepinexLayout()))

	require.NoError(t, Install(archive, dir))
	require.NoError(t, Uninstall(dir, targets))

	assertNoTargets(t, dir, targets)
	// Files outside the fixed list are not tracked and therefore stay behind.
	assert.Equal(t, "not removed on uninstall", readFile(t, filepath.Join(dir, "extra", "readme_from_zip.txt")))
}

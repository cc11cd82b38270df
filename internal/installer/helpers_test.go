package installer

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildZip returns a zip archive holding files (name -> content). Names ending in "/" become directories.
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range sortedKeys(files) {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if content := files[name]; content != "" {
			_, err = w.Write([]byte(content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// writeTar writes files as a tar stream into w.
func writeTar(t *testing.T, w *bytes.Buffer, files map[string]string) {
	t.Helper()
	tw := tar.NewWriter(w)
	for _, name := range sortedKeys(files) {
		content := files[name]
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o644,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
}

func buildTarGz(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var raw bytes.Buffer
	writeTar(t, &raw, files)

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func writeArchive(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// bepinexLayout mimics the top level of a BepInEx 5 release archive.
func bepinexLayout() map[string]string {
	return map[string]string{
		".doorstop_version":          "4.0.0",
		"changelog.txt":              "changes",
		"winhttp.dll":                "MZ",
		"doorstop_config.ini":        "[General]\nenabled=true\n",
		"BepInEx/core/BepInEx.dll":   "MZ core",
		"BepInEx/core/0Harmony.dll":  "MZ harmony",
		"BepInEx/config/BepInEx.cfg": "[Logging]\n",
		"extra/readme_from_zip.txt":  "not removed on uninstall",
	}
}

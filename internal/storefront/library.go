package storefront

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
)

// stateFullyInstalled is the StateFlags bit Steam sets once an app is fully downloaded.
const stateFullyInstalled = 4

// appManifest is the part of an appmanifest_<id>.acf file we read.
type appManifest struct {
	AppID      string
	InstallDir string
	StateFlags int
	HasFlags   bool
}

// installed reports whether the manifest describes a complete installation.
// Manifests without StateFlags are trusted.
func (m appManifest) installed() bool {
	if !m.HasFlags {
		return true
	}
	return m.StateFlags&stateFullyInstalled != 0
}

// parseLibraryFolders returns the library paths listed in libraryfolders.vdf, ordered by index.
// Both the current layout ("0" { "path" "..." }) and the legacy one ("1" "...") are understood.
func parseLibraryFolders(r io.Reader) ([]string, error) {
	doc, err := vdf.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse library folders: %w", err)
	}
	root, ok := lookup(doc, "libraryfolders")
	if !ok {
		return nil, fmt.Errorf("library folders: missing libraryfolders section")
	}

	type entry struct {
		index int
		path  string
	}
	var entries []entry
	for key, value := range root {
		index, err := strconv.Atoi(key)
		if err != nil {
			continue // contentstatsid and friends
		}
		switch v := value.(type) {
		case string:
			entries = append(entries, entry{index, unescape(v)})
		case map[string]interface{}:
			if p, ok := v["path"].(string); ok {
				entries = append(entries, entry{index, unescape(p)})
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.path)
	}
	return paths, nil
}

// parseAppManifest reads the fields of an appmanifest_<id>.acf file.
func parseAppManifest(r io.Reader) (appManifest, error) {
	doc, err := vdf.NewParser(r).Parse()
	if err != nil {
		return appManifest{}, fmt.Errorf("failed to parse app manifest: %w", err)
	}
	state, ok := lookup(doc, "AppState")
	if !ok {
		return appManifest{}, fmt.Errorf("app manifest: missing AppState section")
	}

	var m appManifest
	m.AppID, _ = state["appid"].(string)
	m.InstallDir, _ = state["installdir"].(string)
	if raw, ok := state["StateFlags"].(string); ok {
		flags, err := strconv.Atoi(raw)
		if err != nil {
			return appManifest{}, fmt.Errorf("app manifest: invalid StateFlags %q", raw)
		}
		m.StateFlags, m.HasFlags = flags, true
	}
	if m.InstallDir == "" {
		return appManifest{}, fmt.Errorf("app manifest: missing installdir")
	}
	return m, nil
}

// lookup finds a section by name, ignoring case; Steam has used both spellings over time.
func lookup(doc map[string]interface{}, name string) (map[string]interface{}, bool) {
	for key, value := range doc {
		if strings.EqualFold(key, name) {
			section, ok := value.(map[string]interface{})
			return section, ok
		}
	}
	return nil, false
}

func unescape(p string) string {
	return strings.ReplaceAll(p, `\\`, `\`)
}

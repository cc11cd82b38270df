//go:build windows

package storefront

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// candidateRoots returns the Steam path recorded in the registry followed by the default install location.
func candidateRoots() []string {
	var roots []string
	if k, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE); err == nil {
		if p, _, err := k.GetStringValue("SteamPath"); err == nil && p != "" {
			roots = append(roots, filepath.FromSlash(p))
		}
		k.Close()
	}
	if pf := os.Getenv("ProgramFiles(x86)"); pf != "" {
		roots = append(roots, filepath.Join(pf, "Steam"))
	}
	return append(roots, `C:\Program Files (x86)\Steam`)
}

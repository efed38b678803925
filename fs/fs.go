// Package fs provides filesystem helpers and file-backed caching.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultCacheDir returns the default cache directory for wikilens.
// Uses XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/wikilens,
// or system temp directory if home is unavailable.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "wikilens")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "wikilens")
	}
	return filepath.Join(home, ".cache", "wikilens")
}

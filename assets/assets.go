// Package assets loads the optional runtime files (title font, background
// track, resume PDF) from a directory on disk. Every file is optional:
// callers log a failed load and carry on.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrAssetNotFound wraps every load of a file that does not exist.
var ErrAssetNotFound = errors.New("assets: not found")

var dir = "assets"

// SetDir changes the directory assets are loaded from.
func SetDir(d string) {
	if strings.TrimSpace(d) == "" {
		return
	}
	dir = d
}

func Dir() string { return dir }

// Path resolves an assets-relative path against the assets directory.
func Path(path string) string {
	return filepath.Join(dir, filepath.FromSlash(cleanAssetPath(path)))
}

// LoadFile reads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: load %q: %w", path, ErrAssetNotFound)
	}
	b, err := os.ReadFile(Path(clean))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("assets: load %s: %w", clean, ErrAssetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", clean, err)
	}
	return b, nil
}

func cleanAssetPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}

package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

var downloadDir string

// SetDownloadDir overrides where exported files are written. The default is
// ~/Downloads, or the temp dir when there is no home directory.
func SetDownloadDir(d string) { downloadDir = d }

func DownloadDir() string {
	if downloadDir != "" {
		return downloadDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, "Downloads")
}

// ExportResume copies the resume asset to the download directory under
// name and returns the written path.
func ExportResume(file, name string) (string, error) {
	b, err := LoadFile(file)
	if err != nil {
		return "", fmt.Errorf("assets: resume: %w", err)
	}
	if name == "" {
		name = filepath.Base(file)
	}
	dst := filepath.Join(DownloadDir(), filepath.Base(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("assets: resume: %w", err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return "", fmt.Errorf("assets: resume: write %s: %w", dst, err)
	}
	return dst, nil
}

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// StateDir returns the per-user state directory for app, honoring XDG_STATE_HOME.
func StateDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "state", app)
}

// ExpandHome replaces a leading ~ or $HOME with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") && !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ReplaceAll(strings.TrimPrefix(path, "~"), "$HOME", "")
	}
	if strings.HasPrefix(path, "~") {
		path = home + strings.TrimPrefix(path, "~")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}

// Package config provides configuration path utilities.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and $VAR environment references in a file
// path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}

// DataPath returns the default location for a mutable data file (database,
// log). It honors XDG_DATA_HOME and falls back to ~/.local/share.
func DataPath(file string) string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = ExpandPath("~/.local/share")
	}
	return filepath.Join(base, "modaber", file)
}

// ConfigDir returns the directory searched for the config file. It honors
// XDG_CONFIG_HOME and falls back to ~/.config.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = ExpandPath("~/.config")
	}
	return filepath.Join(base, "modaber")
}

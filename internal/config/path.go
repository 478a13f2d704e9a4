// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}

// Default locations, before expansion.
const (
	DefaultDataDir  = "$HOME/.local/share/cashflow"
	DefaultDBPath   = DefaultDataDir + "/cashflow.db"
	DefaultFilePath = DefaultDataDir + "/cashflow.json"
	DefaultBackups  = DefaultDataDir + "/backups"
)

// PathOr expands path, falling back to def when path is empty.
func PathOr(path, def string) string {
	if strings.TrimSpace(path) == "" {
		path = def
	}
	return ExpandPath(path)
}

// Package config provides YAML-based settings loading for clangen and the
// location of the per-user data directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Settings holds user preferences toggled on the settings screen.
type Settings struct {
	DarkMode        bool   `yaml:"dark_mode"`
	DiscordPresence bool   `yaml:"discord_presence"`
	FPS             int    `yaml:"fps"`
	AutosaveMoons   int    `yaml:"autosave_moons"` // 0 disables autosave
	Language        string `yaml:"language"`
}

// DefaultSettings returns the hardcoded settings used when no file parses.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:        false,
		DiscordPresence: true,
		FPS:             30,
		AutosaveMoons:   5,
		Language:        "english",
	}
}

// Normalize fills zero or out-of-range values with defaults.
func (s *Settings) Normalize() {
	d := DefaultSettings()
	if s.FPS <= 0 || s.FPS > 240 {
		s.FPS = d.FPS
	}
	if s.AutosaveMoons < 0 {
		s.AutosaveMoons = 0
	}
	if s.Language == "" {
		s.Language = d.Language
	}
}

// dataDirName is the directory under $HOME holding saves, settings and logs.
const dataDirName = ".clangen"

// DataDir returns ~/.clangen, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, dataDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("config: cannot create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

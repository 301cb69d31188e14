package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// settingsFile is the file name used in the user and local config locations.
const settingsFile = "settings.yaml"

// LoadSettings loads user settings and reports which file they came from
// ("embedded" when none was found).
// Search order: customPath -> ~/.clangen/settings.yaml -> ./configs/settings.yaml -> embedded default
func LoadSettings(customPath string) (Settings, string, error) {
	var s Settings

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return s, "", fmt.Errorf("config: failed to read settings %s: %w", customPath, err)
		}
		s = DefaultSettings()
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, "", fmt.Errorf("config: failed to parse settings %s: %w", customPath, err)
		}
		s.Normalize()
		return s, customPath, nil
	}

	// Try user data directory
	if userPath := UserSettingsPath(); userPath != "" {
		if loaded, ok := readSettings(userPath); ok {
			return loaded, userPath, nil
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", settingsFile)
	if loaded, ok := readSettings(localPath); ok {
		return loaded, localPath, nil
	}

	// Use embedded default YAML
	s = DefaultSettings()
	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		return DefaultSettings(), "embedded", nil
	}
	s.Normalize()
	return s, "embedded", nil
}

func readSettings(path string) (Settings, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, false
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, false
	}
	s.Normalize()
	return s, true
}

// SaveSettings writes settings to path, creating parent directories.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory for %s: %w", path, err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: cannot encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write settings %s: %w", path, err)
	}
	return nil
}

// UserSettingsPath returns ~/.clangen/settings.yaml, or empty if home is unavailable.
func UserSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, dataDirName, settingsFile)
}

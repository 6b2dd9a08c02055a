package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/textgame.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.textgame/config.yaml -> ./configs/textgame.yaml -> embedded default
// An explicit customPath that cannot be read or parsed is an error; the
// implicit locations are skipped when missing or invalid.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := UserConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML into a normalized config. Missing keys keep defaults.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	cfg.Normalize()
	return cfg, nil
}

// UserConfigPath returns ~/.textgame/config.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".textgame", "config.yaml")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlap loads the game tuning.
// Search order: customPath -> ~/.arcade/configs/flap.yaml -> ./configs/flap.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadFlap(customPath string) (FlapConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFlapConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFlap(data)
		if err != nil {
			return DefaultFlapConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseFlap(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flap.yaml")); err == nil {
		if cfg, err := parseFlap(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseFlap(defaultFlapYAML)
	if err != nil {
		return DefaultFlapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFlap decodes YAML over the defaults and validates the result.
func parseFlap(data []byte) (FlapConfig, error) {
	cfg := DefaultFlapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFlapPreset modifies the config based on a difficulty preset.
// An empty or unknown preset leaves the config untouched.
func ApplyFlapPreset(cfg *FlapConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

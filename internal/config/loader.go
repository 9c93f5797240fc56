package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStarfall loads Starfall configuration.
// Search order: customPath -> ~/.arcade/configs/starfall.yaml -> ./configs/starfall.yaml -> embedded default
func LoadStarfall(customPath string) (StarfallConfig, error) {
	// Start from defaults so partial YAML files only override what they set.
	cfg := DefaultStarfallConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("starfall.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", "starfall.yaml")); ok {
		return c, nil
	}

	if err := yaml.Unmarshal(defaultStarfallYAML, &cfg); err != nil {
		return DefaultStarfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid files are skipped.
func tryLoad(path string) (StarfallConfig, bool) {
	cfg := DefaultStarfallConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyStarfallPreset modifies the config based on a difficulty preset.
func ApplyStarfallPreset(cfg *StarfallConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.InitialInterval = 2.5
		cfg.Difficulty.Decrement = 0.01
	case DifficultyNormal:
		cfg.Difficulty.InitialInterval = 2.0
		cfg.Difficulty.Decrement = 0.02
	case DifficultyHard:
		cfg.Difficulty.InitialInterval = 1.5
		cfg.Difficulty.Decrement = 0.04
	}
}

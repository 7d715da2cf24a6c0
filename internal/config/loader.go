package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a PipeSlide variant.
// Search order: customPath -> ~/.pipeslide/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> hardcoded default.
func Load(gameID, customPath string) (PipeSlideConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultFor(gameID)
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(gameID, userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(gameID, filepath.Join("configs", filename)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultFor(gameID)
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil || cfg.Validate() != nil {
			return DefaultFor(gameID), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// tryFile reads a config file on top of the hardcoded defaults. Missing or
// invalid files are skipped.
func tryFile(gameID, path string) (PipeSlideConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PipeSlideConfig{}, false
	}
	cfg := DefaultFor(gameID)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PipeSlideConfig{}, false
	}
	if cfg.Validate() != nil {
		return PipeSlideConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pipeslide", "configs", filename)
}

// ApplyPreset scales the water period and gap count for a preset. The
// difficulty progression settings come from the config; fixed turns
// progression off, the other presets leave it as configured.
func ApplyPreset(cfg *PipeSlideConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	}

	gaps := cfg.Gaps.Count
	if gaps == 0 {
		gaps = 2 * cfg.Board.Rows
	}

	// Easy boards get more room to slide and a slower flow
	switch preset {
	case DifficultyEasy:
		cfg.Water.PeriodMS = cfg.Water.PeriodMS * 3 / 2
		cfg.Gaps.Count = gaps * 3 / 2
	case DifficultyHard:
		cfg.Water.PeriodMS = cfg.Water.PeriodMS * 3 / 4
		cfg.Gaps.Count = max(1, gaps/2)
	}
}

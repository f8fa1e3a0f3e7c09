package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPuzzle loads the puzzle configuration. Keys missing from the file
// keep their default values.
// Search order: customPath -> ~/.tilemerge/configs/puzzle.yaml -> ./configs/puzzle.yaml -> embedded default
func LoadPuzzle(customPath string) (PuzzleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PuzzleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePuzzle(data)
		if err != nil {
			return PuzzleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("puzzle.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePuzzle(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "puzzle.yaml")); err == nil {
		if cfg, err := parsePuzzle(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePuzzle(defaultPuzzleYAML)
	if err != nil {
		return DefaultPuzzleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePuzzle decodes data over the defaults and validates the result.
func parsePuzzle(data []byte) (PuzzleConfig, error) {
	cfg := DefaultPuzzleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PuzzleConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PuzzleConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilemerge", "configs", filename)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadNuggets loads and validates the game configuration.
// Search order: customPath -> ~/.nugget-hunt/configs/nuggets.yaml -> ./configs/nuggets.yaml -> embedded default
//
// Files are decoded over the built-in defaults, so a partial document only
// overrides the keys it names.
func LoadNuggets(customPath string) (NuggetsConfig, error) {
	cfg, err := loadNuggets(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadNuggets(customPath string) (NuggetsConfig, error) {
	cfg := DefaultNuggetsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("nuggets.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "nuggets.yaml")); err == nil {
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config configs/nuggets.yaml: %w", err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	if err := decode(defaultNuggetsYAML, &cfg); err != nil {
		return DefaultNuggetsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over cfg. Sequences such as the preset list are
// replaced wholesale, mappings are merged key by key.
func decode(data []byte, cfg *NuggetsConfig) error {
	return yaml.Unmarshal(data, cfg)
}

// Marshal renders the configuration as YAML.
func (c NuggetsConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nugget-hunt", "configs", filename)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const banditConfigFile = "bandit.yaml"

// LoadBandit loads the driving game configuration.
// Search order: customPath -> ~/.bandit/configs/bandit.yaml -> ./configs/bandit.yaml -> embedded default
//
// A custom path must exist, parse and validate. The other locations are
// skipped silently when missing or broken.
func LoadBandit(customPath string) (BanditConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BanditConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBandit(data)
		if err != nil {
			return BanditConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(banditConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBandit(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", banditConfigFile)); err == nil {
		if cfg, err := parseBandit(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBandit(defaultBanditYAML)
	if err != nil {
		return DefaultBanditConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBandit decodes YAML on top of the defaults so partial files only
// override what they name, then validates the result.
func parseBandit(data []byte) (BanditConfig, error) {
	cfg := DefaultBanditConfig()
	stages := cfg.Stages
	cfg.Stages = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BanditConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if cfg.Stages == nil {
		cfg.Stages = stages
	}
	if err := cfg.Validate(); err != nil {
		return BanditConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bandit", "configs", filename)
}

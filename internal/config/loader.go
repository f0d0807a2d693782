package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is relative to the working directory.
const localConfigPath = "configs/whack.yaml"

// LoadWhack loads the game constants.
// Search order: customPath -> ~/.whack/config.yaml -> ./configs/whack.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps the default.
func LoadWhack(customPath string) (WhackConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	if path := userConfigPath(); path != "" {
		if cfg, err := loadFile(path); err == nil {
			return cfg, SourceUser, cfg.Validate()
		} else if !errors.Is(err, fs.ErrNotExist) {
			return cfg, SourceUser, err
		}
	}

	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, SourceLocal, cfg.Validate()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return cfg, SourceLocal, err
	}

	cfg, err := Parse(defaultWhackYAML)
	if err != nil {
		return DefaultWhackConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document on top of the built-in defaults.
func Parse(data []byte) (WhackConfig, error) {
	cfg := DefaultWhackConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg WhackConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func loadFile(path string) (WhackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultWhackConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".whack", "config.yaml")
}

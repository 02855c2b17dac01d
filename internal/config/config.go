// Package config loads the drawing-master JSON configuration and turns it
// into options for the canvas, editor and exporter.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/Drawing-master/Drawing-Master/internal/logging"
)

const (
	appDir     = "drawing-master"
	configName = "config.json"
	libraryDB  = "projects.db"
)

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Root returns the per-user configuration directory.
func Root() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

// DefaultPath returns the path of the user's config file.
func DefaultPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}

// Default returns a config holding only the built-in defaults.
func Default() Config {
	cfg := make(Config)
	applyDefaults(cfg)
	return cfg
}

// Load reads the config at path and fills in missing keys with defaults.
// A missing file is created with the defaults. A file that cannot be
// parsed yields the defaults together with the parse error.
func Load(path string) (Config, error) {
	cfg, exists, err := readConfig(path)
	if err != nil {
		logging.Logger().Warn("config unreadable, using defaults", "path", path, "err", err)
		return Default(), err
	}
	if !exists {
		cfg = Default()
		if err := Save(path, cfg); err != nil {
			logging.Logger().Warn("failed to write default config", "path", path, "err", err)
			return cfg, err
		}
		logging.Logger().Info("wrote default config", "path", path)
		return cfg, nil
	}
	if cfg == nil {
		cfg = make(Config)
	}
	applyDefaults(cfg)
	logging.Logger().Debug("loaded config", "path", path)
	return cfg, nil
}

// LoadDefault loads the config from DefaultPath.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig holds defaults loaded from the optional TOML config file.
// Flags override every field.
type fileConfig struct {
	Theme      string `toml:"theme"`
	Dark       bool   `toml:"dark"`
	Width      int    `toml:"width"`
	Hyperlinks string `toml:"hyperlinks"`
}

func defaultConfig() fileConfig {
	return fileConfig{Hyperlinks: "auto"}
}

// loadConfig reads RODOMARK_CONFIG or the user config dir. A missing
// file is not an error; a malformed one is.
func loadConfig() (fileConfig, error) {
	cfg := defaultConfig()
	path := os.Getenv("RODOMARK_CONFIG")
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "rodomark", "config.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.Hyperlinks == "" {
		cfg.Hyperlinks = "auto"
	}
	return cfg, nil
}

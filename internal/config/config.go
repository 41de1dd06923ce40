// Package config loads setlist configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/avrel/setlist/internal/playlist"
)

const appName = "setlist"

type Config struct {
	DefaultFolder string `koanf:"default_folder"` // loaded when no arguments are given
	Icons         string `koanf:"icons"`          // "nerd", "unicode", or "none"
	Repeat        string `koanf:"repeat"`         // "off", "all", or "one"
}

// Load reads configuration files in order of priority (last wins):
// the XDG config dir, then ./config.toml. Missing files are fine.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in default_folder
	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	// Reject bad repeat values at startup rather than at first use
	if _, err := playlist.ParseRepeatMode(cfg.Repeat); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// RepeatMode returns the configured repeat mode.
// Load already validated the value.
func (c *Config) RepeatMode() playlist.RepeatMode {
	mode, _ := playlist.ParseRepeatMode(c.Repeat)
	return mode
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

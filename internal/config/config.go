package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional config file at
// $XDG_CONFIG_HOME/duskswap/config.toml.
type fileConfig struct {
	PicturesDir string `toml:"pictures_dir"`
	BaseDir     string `toml:"base_dir"`
	OverflowDir string `toml:"overflow_dir"`
}

// Load resolves the managed paths. Precedence: DUSKSWAP_ROOT environment
// variable, then the config file, then ~/Pictures. A missing config file is
// not an error.
func Load() (*Paths, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	// Env override wins outright; the config file is not consulted.
	if os.Getenv("DUSKSWAP_ROOT") != "" {
		return paths, nil
	}

	cfgPath, err := configFilePath()
	if err != nil {
		return nil, err
	}
	return applyFile(paths, cfgPath)
}

// configFilePath returns the config file location, respecting XDG_CONFIG_HOME.
func configFilePath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "duskswap", "config.toml"), nil
}

// applyFile overlays values from the config file onto paths. Only keys
// actually present in the file override; blank values are ignored.
func applyFile(paths *Paths, path string) (*Paths, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) {
			return paths, nil
		}
		return nil, fmt.Errorf("load duskswap config: %w", err)
	}

	if meta.IsDefined("pictures_dir") {
		if dir := strings.TrimSpace(raw.PicturesDir); dir != "" {
			paths = pathsFrom(dir)
		}
	}

	if meta.IsDefined("base_dir") {
		if dir := strings.TrimSpace(raw.BaseDir); dir != "" {
			paths.setBase(dir)
		}
	}

	if meta.IsDefined("overflow_dir") {
		if dir := strings.TrimSpace(raw.OverflowDir); dir != "" {
			paths.Overflow = dir
		}
	}

	return paths, nil
}

// Package config resolves the filesystem paths duskswap manages.
//
// All managed paths derive from the invoking user's pictures directory
// (default: ~/Pictures). The root can be overridden with the DUSKSWAP_ROOT
// environment variable or an optional TOML config file; the environment
// variable wins.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths duskswap manages.
type Paths struct {
	// Pictures is the user's pictures directory (default: ~/Pictures).
	Pictures string

	// Base is the managed wallpaper directory (Pictures/wallpapers).
	Base string

	// Dark is the dark theme candidate inside Base.
	Dark string

	// Light is the light theme candidate inside Base.
	Light string

	// Active is the promoted theme directory inside Base.
	Active string

	// Overflow is the conflict-resolution destination outside Base
	// (Pictures/light). A light candidate displaced by a dark one
	// lands here instead of being deleted.
	Overflow string
}

// DefaultPaths returns the default paths for duskswap.
// The pictures root can be overridden with the DUSKSWAP_ROOT
// environment variable.
func DefaultPaths() (*Paths, error) {
	pictures := os.Getenv("DUSKSWAP_ROOT")
	if pictures == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		pictures = filepath.Join(home, "Pictures")
	}

	return pathsFrom(pictures), nil
}

// pathsFrom derives every managed path from a pictures root.
func pathsFrom(pictures string) *Paths {
	base := filepath.Join(pictures, "wallpapers")
	p := &Paths{
		Pictures: pictures,
		Overflow: filepath.Join(pictures, "light"),
	}
	p.setBase(base)
	return p
}

// setBase points Base and every path under it at a new directory.
func (p *Paths) setBase(base string) {
	p.Base = base
	p.Dark = filepath.Join(base, "dark")
	p.Light = filepath.Join(base, "light")
	p.Active = filepath.Join(base, "active")
}

// Package config handles settings for the classic command-line tool.
// Configurations are stored as YAML on disk.
package config

import (
	"cmp"
	"fmt"
	"os"
	"strings"

	"github.com/creachadair/classic/cipher"
	"github.com/creachadair/mds/value"
	yaml "gopkg.in/yaml.v3"
)

// A Config represents the contents of a config file.
type Config struct {
	// A map from profile names to cipher profiles.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`

	// A default profile, fills in empty fields of a named profile.
	Default Profile `yaml:"default,omitempty"`

	// Default values for flags.
	Flags struct {
		Verbose bool `yaml:"verbose,omitempty"`
	} `yaml:"flags,omitempty"`
}

// A Profile is a named cipher setting.
type Profile struct {
	Algorithm cipher.Kind `yaml:"algorithm,omitempty"`
	Key       string      `yaml:"key,omitempty"`
	Rails     int         `yaml:"rails,omitempty"`
	Literal   *bool       `yaml:"literal,omitempty"`
	Notes     string      `yaml:"notes,omitempty"`
}

// Path returns the path of the config file. If CLASSIC_CONFIG is set in the
// environment, that is used even if it is empty; otherwise the file is
// $HOME/.classic.yaml.
func Path() string {
	if path, ok := os.LookupEnv("CLASSIC_CONFIG"); ok {
		return path
	}
	return os.ExpandEnv("$HOME/.classic.yaml")
}

// Load loads the contents of the specified path into c.  If path does not
// exist, the reported error satisfies os.IsNotExist and c is unmodified.
// An empty path loads nothing and reports no error.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	return nil
}

// Profile returns the profile with the given name, merged with the default,
// and reports whether a profile by that name was found.  An empty name selects
// the default profile alone.
func (c *Config) Profile(name string) (Profile, bool) {
	if name == "" {
		return c.Default, true
	}
	p, ok := c.Profiles[name]
	if !ok {
		// Names are matched without regard to case as a fallback.
		for key, cp := range c.Profiles {
			if strings.EqualFold(key, name) {
				p, ok = cp, true
				break
			}
		}
	}
	return p.merge(c.Default), ok
}

// merge returns a copy of p in which non-empty fields of d are used to fill
// empty fields of p.
func (p Profile) merge(d Profile) Profile {
	p.Algorithm = cmp.Or(p.Algorithm, d.Algorithm)
	p.Key = cmp.Or(p.Key, d.Key)
	if p.Rails <= 0 {
		p.Rails = d.Rails
	}
	if p.Literal == nil {
		p.Literal = d.Literal
	}
	return p
}

// Cipher returns a cipher configuration for p.
func (p Profile) Cipher() cipher.Config {
	return cipher.Config{
		Kind:    p.Algorithm,
		Key:     p.Key,
		Rails:   p.Rails,
		Literal: value.At(p.Literal),
	}
}

func (p Profile) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "algorithm=%v", p.Algorithm)
	if p.Algorithm == cipher.RailFence && p.Rails > 0 {
		fmt.Fprintf(&sb, ", rails=%d", p.Rails)
	}
	fmt.Fprintf(&sb, ", key=%s", value.Cond(p.Key == "", "<unset>", "<set>"))
	if p.Literal != nil {
		fmt.Fprintf(&sb, ", literal=%v", *p.Literal)
	}
	return sb.String()
}

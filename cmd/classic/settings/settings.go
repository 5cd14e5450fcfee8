// Package settings contains shared settings used by classic subcommands.
package settings

import (
	"cmp"
	"errors"
	"fmt"
	"log"

	"github.com/creachadair/classic/cipher"
	"github.com/creachadair/classic/internal/config"
	"github.com/creachadair/command"
)

// Settings are shared settings used by classic subcommands.
type Settings struct {
	Config  *config.Config
	Verbose bool
}

// Get returns the settings associated with env.
func Get(env *command.Env) *Settings { return env.Config.(*Settings) }

// Overrides are command-line values that take precedence over the settings of
// a profile. Zero fields do not override.
type Overrides struct {
	Algorithm string
	Key       string
	Rails     int
	Literal   bool
}

// ErrNoKey is reported by Cipher if the selected cipher needs a key and none
// was provided.
var ErrNoKey = errors.New("no key specified")

// CipherConfig returns the cipher configuration for the named profile with the
// given overrides applied. An empty profile name uses the default profile.
// If the resulting configuration lacks a key, prompt is called to obtain one,
// if it is non-nil; otherwise ErrNoKey is reported.
func CipherConfig(env *command.Env, profile string, o Overrides, prompt func() (string, error)) (cipher.Config, error) {
	set := Get(env)
	p, ok := set.Config.Profile(profile)
	if !ok {
		return cipher.Config{}, fmt.Errorf("no profile named %q", profile)
	}
	if set.Verbose {
		log.Printf("Profile %q: %v", profile, p)
	}

	cc := p.Cipher()
	if o.Algorithm != "" {
		k, err := cipher.ParseKind(o.Algorithm)
		if err != nil {
			return cipher.Config{}, err
		}
		cc.Kind = k
	}
	if cc.Kind == 0 {
		return cipher.Config{}, env.Usagef("you must specify an algorithm (-a)")
	}
	cc.Key = cmp.Or(o.Key, cc.Key)
	cc.Rails = cmp.Or(o.Rails, cc.Rails)
	cc.Literal = cc.Literal || o.Literal

	if cc.Key == "" && cc.Kind != cipher.RailFence {
		if prompt == nil {
			return cipher.Config{}, fmt.Errorf("%v: %w", cc.Kind, ErrNoKey)
		}
		key, err := prompt()
		if err != nil {
			return cipher.Config{}, fmt.Errorf("read key: %w", err)
		}
		cc.Key = key
	}
	return cc, nil
}

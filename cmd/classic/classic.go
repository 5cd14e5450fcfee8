// Program classic encrypts and decrypts text with classical ciphers.
package main

import (
	"cmp"
	"fmt"
	"log"
	"os"

	"github.com/creachadair/classic/cmd/classic/internal/cmdcipher"
	"github.com/creachadair/classic/cmd/classic/settings"
	"github.com/creachadair/classic/internal/config"
	"github.com/creachadair/command"
	"github.com/creachadair/flax"
)

func main() {
	var flags struct {
		Config  string `flag:"config,Config file path (default $CLASSIC_CONFIG or ~/.classic.yaml)"`
		Verbose bool   `flag:"v,Enable verbose logging"`
	}
	root := &command.C{
		Name: command.ProgramName(),
		Help: `📜 Encrypt and decrypt text with classical ciphers.

The Playfair, Rail Fence, and keyword Substitution ciphers are supported.
These are historical ciphers and provide no real security.

Settings may be stored in a YAML config file as named profiles, selected
with -p. Use --config to specify the file, or set CLASSIC_CONFIG in the
environment. If CLASSIC_CONFIG is set but empty, no config file is read.`,

		SetFlags: command.Flags(flax.MustBind, &flags),

		Init: func(env *command.Env) error {
			cfg := new(config.Config)
			path := cmp.Or(flags.Config, config.Path())
			if err := cfg.Load(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("loading configuration: %w", err)
			}
			verbose := flags.Verbose || cfg.Flags.Verbose
			if verbose {
				log.Printf("Config file: %q", path)
			}
			env.Config = &settings.Settings{Config: cfg, Verbose: verbose}
			return nil
		},

		Commands: append(
			cmdcipher.Commands,
			command.HelpCommand([]command.HelpTopic{{
				Name: "config",
				Help: `Format of the configuration file.

The config file is YAML with the following layout:

  default:            # settings used when no profile is given
    algorithm: playfair
    literal: false
  profiles:
    club:             # select with --p club
      algorithm: substitution
      key: monarchy
    fence:
      algorithm: railfence
      rails: 3
  flags:
    verbose: false

Fields of a profile that are not set are taken from the default.
Flags given on the command line override both.`,
			}, {
				Name: "literal",
				Help: `Literal cipher behaviour.

By default, decryption inverts encryption for every cipher. With --literal,
Playfair and Substitution decrypt by applying the encryption rules again,
Substitution leaves uppercase letters unchanged, and Playfair keeps J as its
own letter rather than merging it into I. In either behaviour Playfair does
not insert a filler between doubled letters.`,
			}}),
			command.VersionCommand(),
		),
	}
	command.RunOrFail(root.NewEnv(nil).MergeFlags(true), os.Args[1:])
}

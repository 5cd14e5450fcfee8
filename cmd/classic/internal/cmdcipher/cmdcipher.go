// Package cmdcipher implements the cipher subcommands.
package cmdcipher

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/classic/alphabet"
	"github.com/creachadair/classic/cipher"
	"github.com/creachadair/classic/cmd/classic/settings"
	"github.com/creachadair/classic/playfair"
	"github.com/creachadair/classic/railfence"
	"github.com/creachadair/classic/substitution"
	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/getpass"
	"golang.org/x/term"
)

var Commands = []*command.C{
	{
		Name:  "encrypt",
		Usage: "[text ...]",
		Help: `Encrypt text with the selected cipher.

The text is the arguments joined by spaces, or if there are none, the
contents of stdin. If no key is given by -k or the selected profile and
stdin is a terminal, the key is read from the terminal without echo.`,
		SetFlags: command.Flags(flax.MustBind, &cipherFlags),
		Run:      command.Adapt(runTransform),
	},
	{
		Name:     "decrypt",
		Usage:    "[text ...]",
		Help:     "Decrypt text with the selected cipher.\n\nSee the help for encrypt for details.",
		SetFlags: command.Flags(flax.MustBind, &cipherFlags),
		Run:      command.Adapt(runTransform),
	},
	{
		Name:     "key",
		Help:     "Print the key material derived from a key for the selected cipher.",
		SetFlags: command.Flags(flax.MustBind, &cipherFlags),
		Run:      command.Adapt(runKey),
	},
	{
		Name: "list",
		Help: "List the supported ciphers.",
		Run:  command.Adapt(runList),
	},
}

type cipherSettings struct {
	Algorithm string `flag:"a,Cipher algorithm: Playfair or RailFence or Substitution"`
	Key       string `flag:"k,Cipher key"`
	Rails     int    `flag:"rails,Number of rails for RailFence (default 2)"`
	Literal   bool   `flag:"literal,Use literal non-invertible decryption (see help literal)"`
	Profile   string `flag:"p,Use this config profile"`
	Out       string `flag:"out,Write output to this file instead of stdout"`
}

var cipherFlags cipherSettings

// These are variables so that tests can replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout

	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	promptKey       = func() (string, error) { return getpass.Prompt("Key: ") }
)

// newCipher constructs the cipher selected by the flags and configuration.
func newCipher(env *command.Env) (cipher.Cipher, error) {
	var prompt func() (string, error)
	if stdinIsTerminal() {
		prompt = promptKey
	}
	cc, err := settings.CipherConfig(env, cipherFlags.Profile, settings.Overrides{
		Algorithm: cipherFlags.Algorithm,
		Key:       cipherFlags.Key,
		Rails:     cipherFlags.Rails,
		Literal:   cipherFlags.Literal,
	}, prompt)
	if err != nil {
		return nil, err
	}
	return cipher.New(cc)
}

// readText returns the text to transform from args, or from stdin if args is
// empty. A single trailing newline is removed from stdin.
func readText(env *command.Env, args []string) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, " "), nil
	} else if stdinIsTerminal() {
		return "", env.Usagef("no text provided")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// runTransform implements the "encrypt" and "decrypt" subcommands.
func runTransform(env *command.Env, args ...string) error {
	mode, err := cipher.ParseMode(env.Command.Name)
	if err != nil {
		return err
	}
	text, err := readText(env, args)
	if err != nil {
		return err
	}
	c, err := newCipher(env)
	if err != nil {
		return err
	}
	out, err := cipher.Apply(c, mode, text)
	if err != nil {
		return fmt.Errorf("%v %s: %w", c.Kind(), mode, err)
	}
	return writeOutput(env, out)
}

// writeOutput writes s followed by a newline to stdout, or to the --out file
// if one is set.
func writeOutput(env *command.Env, s string) error {
	if cipherFlags.Out == "" {
		_, err := fmt.Fprintln(stdout, s)
		return err
	}
	if err := atomicfile.Tx(cipherFlags.Out, 0600, func(f io.Writer) error {
		_, err := fmt.Fprintln(f, s)
		return err
	}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(env, "Wrote %q\n", cipherFlags.Out)
	return nil
}

// runKey implements the "key" subcommand.
func runKey(env *command.Env) error {
	c, err := newCipher(env)
	if err != nil {
		return err
	}
	var out string
	switch t := cipher.Unwrap(c).(type) {
	case *playfair.Cipher:
		out = t.String()
	case *railfence.Cipher:
		out = fmt.Sprintf("rails: %d", t.Rails())
	case *substitution.Cipher:
		out = fmt.Sprintf("plain:  %s\ncipher: %s", alphabet.Lowercase, t.Key())
	default:
		return fmt.Errorf("unsupported cipher %v", c.Kind())
	}
	return writeOutput(env, out)
}

var descriptions = map[cipher.Kind]string{
	cipher.Playfair:     "Digraph cipher on a 5×5 letter grid derived from the key",
	cipher.RailFence:    "Zigzag transposition over a number of rails (key: rail count)",
	cipher.Substitution: "Letter substitution through a keyword alphabet",
}

// runList implements the "list" subcommand.
func runList(env *command.Env) error {
	tw := tabwriter.NewWriter(stdout, 4, 0, 2, ' ', 0)
	for _, k := range cipher.Kinds {
		fmt.Fprintf(tw, "%s\t%s\n", k, descriptions[k])
	}
	return tw.Flush()
}

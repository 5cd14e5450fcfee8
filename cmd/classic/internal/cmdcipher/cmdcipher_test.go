package cmdcipher

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/classic/cipher"
	"github.com/creachadair/classic/cmd/classic/settings"
	"github.com/creachadair/classic/internal/config"
	"github.com/creachadair/command"
	"github.com/creachadair/mds/mtest"
)

func pbool(t bool) *bool { return &t }

var testConfig = &config.Config{
	Profiles: map[string]config.Profile{
		"club":  {Algorithm: cipher.Substitution, Key: "monarchy"},
		"fence": {Algorithm: cipher.RailFence, Rails: 3},
		"old":   {Algorithm: cipher.Playfair, Key: "playfair example", Literal: pbool(true)},
	},
}

// run executes the cipher subcommands with args and returns what they wrote
// to stdout.
func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cipherFlags = cipherSettings{}

	var buf bytes.Buffer
	mtest.Swap[io.Writer](t, &stdout, &buf)

	// Make fresh commands so that flags are bound anew on each run.
	var cmds []*command.C
	for _, c := range Commands {
		cmds = append(cmds, &command.C{
			Name:     c.Name,
			Usage:    c.Usage,
			Help:     c.Help,
			SetFlags: c.SetFlags,
			Run:      c.Run,
		})
	}
	root := &command.C{
		Name: "test",
		Init: func(env *command.Env) error {
			env.Config = &settings.Settings{Config: cfg}
			return nil
		},
		Commands: cmds,
	}
	err := command.Run(root.NewEnv(nil), args)
	return buf.String(), err
}

func noTerminal(t *testing.T) {
	t.Helper()
	mtest.Swap(t, &stdinIsTerminal, func() bool { return false })
	mtest.Swap(t, &promptKey, func() (string, error) {
		t.Fatal("unexpected key prompt")
		return "", nil
	})
}

func TestTransform(t *testing.T) {
	noTerminal(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"encrypt", "-a", "substitution", "-k", "KEYWORD", "hello"}, "aoggj\n"},
		{[]string{"decrypt", "-a", "substitution", "-k", "KEYWORD", "aoggj"}, "hello\n"},
		{[]string{"decrypt", "-a", "substitution", "-k", "KEYWORD", "-literal", "aoggj"}, "kjddc\n"},
		{[]string{"encrypt", "-a", "rail-fence", "-k", "3", "WEAREDISCOVERED", "FLEEATONCE"}, "WECRLTEERDSOEEFEAOCAIVDEN\n"},
		{[]string{"encrypt", "-a", "RailFence", "HELLO"}, "HLOEL\n"},
		{[]string{"encrypt", "-a", "playfair", "-k", "playfair example", "Hide the gold"}, "BMODZBXDNAGE\n"},
		{[]string{"decrypt", "-a", "playfair", "-k", "playfair example", "BMODZBXDNAGE"}, "HIDETHEGOLDX\n"},

		// Profiles supply settings, and flags override them.
		{[]string{"encrypt", "-p", "club", "hello"}, "yrffj\n"},
		{[]string{"encrypt", "-p", "club", "-k", "KEYWORD", "hello"}, "aoggj\n"},
		{[]string{"encrypt", "-p", "fence", "WEAREDISCOVEREDFLEEATONCE"}, "WECRLTEERDSOEEFEAOCAIVDEN\n"},
		{[]string{"decrypt", "-p", "old", "BMODZBXDNAGE"}, "HIVOTHEGOLDX\n"},
	}
	for _, test := range tests {
		got, err := run(t, testConfig, test.args...)
		if err != nil {
			t.Errorf("Run %q: unexpected error: %v", test.args, err)
		} else if got != test.want {
			t.Errorf("Run %q: got %q, want %q", test.args, got, test.want)
		}
	}
}

func TestErrors(t *testing.T) {
	noTerminal(t)
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"encrypt", "-a", "substitution", "text"}, settings.ErrNoKey},
		{[]string{"encrypt", "-a", "enigma", "-k", "x", "text"}, cipher.ErrUnknownKind},
		{[]string{"encrypt", "-a", "playfair", "-k", "123", "text"}, cipher.ErrEmptyKey},
		{[]string{"encrypt", "-a", "railfence", "-rails", "1", "text"}, cipher.ErrInvalidRailCount},
		{[]string{"encrypt", "-p", "old", "jam"}, cipher.ErrInvalidCharacter},
	}
	for _, test := range tests {
		got, err := run(t, testConfig, test.args...)
		if !errors.Is(err, test.want) {
			t.Errorf("Run %q: got (%q, %v), want %v", test.args, got, err, test.want)
		}
	}

	// These are usage errors without a sentinel.
	for _, args := range [][]string{
		{"encrypt", "-k", "keyword", "text"}, // no algorithm
		{"encrypt", "-p", "nonesuch", "-a", "playfair", "-k", "x", "text"},
	} {
		if got, err := run(t, testConfig, args...); err == nil {
			t.Errorf("Run %q: got %q, want error", args, got)
		}
	}
}

func TestStdin(t *testing.T) {
	noTerminal(t)
	mtest.Swap[io.Reader](t, &stdin, strings.NewReader("hello\n"))

	got, err := run(t, testConfig, "encrypt", "-a", "substitution", "-k", "KEYWORD")
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}
	if got != "aoggj\n" {
		t.Errorf("Run: got %q, want %q", got, "aoggj\n")
	}
}

func TestPrompt(t *testing.T) {
	mtest.Swap(t, &stdinIsTerminal, func() bool { return true })
	mtest.Swap(t, &promptKey, func() (string, error) { return "KEYWORD", nil })

	got, err := run(t, testConfig, "encrypt", "-a", "substitution", "hello")
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}
	if got != "aoggj\n" {
		t.Errorf("Run: got %q, want %q", got, "aoggj\n")
	}

	// With a terminal on stdin, some text must be given.
	if got, err := run(t, testConfig, "encrypt", "-a", "substitution"); err == nil {
		t.Errorf("Run without text: got %q, want error", got)
	}
}

func TestOutputFile(t *testing.T) {
	noTerminal(t)
	path := filepath.Join(t.TempDir(), "out.txt")

	got, err := run(t, testConfig, "encrypt", "-a", "substitution", "-k", "KEYWORD", "-out", path, "hello")
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Run: unexpected stdout %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read output: %v", err)
	}
	if string(data) != "aoggj\n" {
		t.Errorf("Output file: got %q, want %q", data, "aoggj\n")
	}
}

func TestKey(t *testing.T) {
	noTerminal(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"key", "-a", "playfair", "-k", "playfair example"},
			"P L A Y F\nI R E X M\nB C D G H\nK N O Q S\nT U V W Z\n"},
		{[]string{"key", "-p", "club"},
			"plain:  abcdefghijklmnopqrstuvwxyz\ncipher: monarchybdefgijklpqstuvwxz\n"},
		{[]string{"key", "-p", "fence"}, "rails: 3\n"},
	}
	for _, test := range tests {
		got, err := run(t, testConfig, test.args...)
		if err != nil {
			t.Errorf("Run %q: unexpected error: %v", test.args, err)
		} else if got != test.want {
			t.Errorf("Run %q: got %q, want %q", test.args, got, test.want)
		}
	}
}

func TestList(t *testing.T) {
	got, err := run(t, testConfig, "list")
	if err != nil {
		t.Fatalf("Run list: unexpected error: %v", err)
	}
	for _, k := range cipher.Kinds {
		if !strings.Contains(got, k.String()) {
			t.Errorf("List output is missing %v:\n%s", k, got)
		}
	}
}

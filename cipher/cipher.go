// Package cipher provides a common interface to the Playfair, Rail Fence and
// Substitution ciphers, selected by a Kind.
package cipher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/classic/alphabet"
	"github.com/creachadair/classic/playfair"
	"github.com/creachadair/classic/railfence"
	"github.com/creachadair/classic/substitution"
)

var (
	// ErrInvalidCharacter is reported when Playfair text contains a letter
	// that does not occur in the key matrix.
	ErrInvalidCharacter = playfair.ErrInvalidCharacter

	// ErrEmptyKey is reported when a key has no usable letters.
	ErrEmptyKey = alphabet.ErrEmptyKey

	// ErrInvalidRailCount is reported when a Rail Fence has fewer than 2 rails.
	ErrInvalidRailCount = railfence.ErrInvalidRailCount

	// ErrUnknownKind is reported when parsing an unrecognized cipher name.
	ErrUnknownKind = errors.New("unknown cipher")

	// ErrUnknownMode is reported when parsing an unrecognized mode name.
	ErrUnknownMode = errors.New("unknown mode")
)

// A Cipher encrypts and decrypts text.
type Cipher interface {
	// Kind reports which cipher this is.
	Kind() Kind

	// Encrypt returns the encryption of text.
	Encrypt(text string) (string, error)

	// Decrypt returns the decryption of text.
	Decrypt(text string) (string, error)
}

// Config is the configuration for a Cipher.
type Config struct {
	// Kind selects the cipher (required).
	Kind Kind

	// Key is the key string. For Playfair and Substitution it must contain at
	// least one letter. For RailFence, a decimal key selects the number of
	// rails when Rails is zero; any other key is ignored.
	Key string

	// Rails is the number of rails for a RailFence cipher. If zero, the count
	// is taken from Key if possible, otherwise railfence.DefaultRails.
	Rails int

	// Literal, if true, selects the non-invertible behaviour of Playfair and
	// Substitution, in which decryption applies the same transformation as
	// encryption and Substitution ignores uppercase letters. By default both
	// ciphers are invertible.
	Literal bool
}

// New constructs a cipher from the given config.
func New(cfg Config) (Cipher, error) {
	switch cfg.Kind {
	case Playfair:
		c, err := playfair.New(cfg.Key, &playfair.Options{Invertible: !cfg.Literal})
		if err != nil {
			return nil, err
		}
		return playfairCipher{c}, nil

	case RailFence:
		c, err := railfence.New(cfg.rails())
		if err != nil {
			return nil, err
		}
		return railFenceCipher{c}, nil

	case Substitution:
		c, err := substitution.New(cfg.Key, &substitution.Options{Invertible: !cfg.Literal})
		if err != nil {
			return nil, err
		}
		return substitutionCipher{c}, nil

	default:
		return nil, fmt.Errorf("kind %d: %w", cfg.Kind, ErrUnknownKind)
	}
}

func (c Config) rails() int {
	if c.Rails != 0 {
		return c.Rails
	} else if n, err := strconv.Atoi(strings.TrimSpace(c.Key)); err == nil {
		return n
	}
	return railfence.DefaultRails
}

// Apply applies c to text in the specified mode.
func Apply(c Cipher, mode Mode, text string) (string, error) {
	switch mode {
	case Encrypt:
		return c.Encrypt(text)
	case Decrypt:
		return c.Decrypt(text)
	default:
		return "", fmt.Errorf("mode %d: %w", mode, ErrUnknownMode)
	}
}

// Unwrap returns the concrete cipher underlying c: a *playfair.Cipher,
// *railfence.Cipher, or *substitution.Cipher. It returns nil if c was not
// constructed by New.
func Unwrap(c Cipher) any {
	switch t := c.(type) {
	case playfairCipher:
		return t.Cipher
	case railFenceCipher:
		return t.Cipher
	case substitutionCipher:
		return t.Cipher
	}
	return nil
}

type playfairCipher struct{ *playfair.Cipher }

func (playfairCipher) Kind() Kind { return Playfair }

type railFenceCipher struct{ *railfence.Cipher }

func (railFenceCipher) Kind() Kind { return RailFence }

func (c railFenceCipher) Encrypt(text string) (string, error) { return c.Cipher.Encrypt(text), nil }
func (c railFenceCipher) Decrypt(text string) (string, error) { return c.Cipher.Decrypt(text), nil }

type substitutionCipher struct{ *substitution.Cipher }

func (substitutionCipher) Kind() Kind { return Substitution }

func (c substitutionCipher) Encrypt(text string) (string, error) { return c.Cipher.Encrypt(text), nil }
func (c substitutionCipher) Decrypt(text string) (string, error) { return c.Cipher.Decrypt(text), nil }

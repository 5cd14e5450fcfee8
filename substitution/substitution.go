// Package substitution implements a keyword monoalphabetic substitution
// cipher over the lowercase ASCII letters.
package substitution

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/creachadair/classic/alphabet"
)

// Options control the behaviour of a Cipher. A nil *Options is ready for use
// and provides the literal behaviour.
type Options struct {
	// Invertible, if true, makes decryption use the inverse of the key table,
	// and maps uppercase letters through the table preserving their case.
	//
	// If false, decryption applies the same table as encryption, and only
	// lowercase letters are substituted.
	Invertible bool
}

func (o *Options) invertible() bool { return o != nil && o.Invertible }

// A Cipher is a substitution cipher with a fixed key table.
// A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	key        alphabet.Alphabet
	enc, dec   [26]byte
	invertible bool
}

// New constructs a substitution cipher keyed by password. The key table is
// the distinct letters of password, lowercased, in order of first occurrence,
// followed by the remaining letters in alphabetical order. New reports an
// error wrapping alphabet.ErrEmptyKey if password contains no letters.
func New(password string, opts *Options) (*Cipher, error) {
	key, err := alphabet.Keyed(alphabet.Lowercase, password, unicode.ToLower)
	if err != nil {
		return nil, fmt.Errorf("substitution: %w", err)
	}
	c := &Cipher{key: key, invertible: opts.invertible()}
	for i := range 26 {
		c.enc[i] = key[i]
		c.dec[key[i]-'a'] = byte('a' + i)
	}
	return c, nil
}

// Key returns the 26-letter key table of c.
func (c *Cipher) Key() string { return c.key.String() }

// Encrypt encrypts text with c.
func (c *Cipher) Encrypt(text string) string { return c.Transform(text, false) }

// Decrypt decrypts text with c. Unless c was constructed with the Invertible
// option, this is the same as Encrypt.
func (c *Cipher) Decrypt(text string) string { return c.Transform(text, true) }

// Transform substitutes each letter of text through the key table, or its
// inverse if decrypt is true and c is invertible. Other characters are copied
// unchanged.
func (c *Cipher) Transform(text string, decrypt bool) string {
	tab := &c.enc
	if decrypt && c.invertible {
		tab = &c.dec
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z':
			return rune(tab[r-'a'])
		case c.invertible && 'A' <= r && r <= 'Z':
			return rune(tab[r-'A'] - 'a' + 'A')
		}
		return r
	}, text)
}

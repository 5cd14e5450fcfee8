// Package alphabet defines a type to represent an ordered alphabet of letters,
// and the keyed permutations of an alphabet used by the classical ciphers.
package alphabet

import (
	"errors"
	"strings"
)

// An Alphabet is a string of distinct ASCII characters. Order is significant.
type Alphabet string

const (
	// Uppercase is an alphabet of the uppercase ASCII letters.
	Uppercase = Alphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	// Lowercase is an alphabet of the lowercase ASCII letters.
	Lowercase = Alphabet("abcdefghijklmnopqrstuvwxyz")

	// Playfair is the 25-letter uppercase alphabet used for a Playfair grid,
	// in which J is merged into I.
	Playfair = Alphabet("ABCDEFGHIKLMNOPQRSTUVWXYZ")
)

// ErrEmptyKey is reported by Keyed if the key contains no letters of the
// alphabet.
var ErrEmptyKey = errors.New("key has no usable letters")

// Keyed returns a permutation of a derived from key. Each rune of the key is
// first mapped through fold, if it is non-nil. The distinct results that are
// members of a come first, in order of first occurrence, followed by the
// remaining letters of a in their original order. Runes not in a are skipped.
//
// If no rune of key is a member of a, Keyed reports ErrEmptyKey.
func Keyed(a Alphabet, key string, fold func(rune) rune) (Alphabet, error) {
	var buf strings.Builder
	seen := make(map[rune]bool)
	for _, r := range key {
		if fold != nil {
			r = fold(r)
		}
		if seen[r] || !a.Contains(r) {
			continue
		}
		seen[r] = true
		buf.WriteRune(r)
	}
	if buf.Len() == 0 {
		return "", ErrEmptyKey
	}
	for _, r := range string(a) {
		if !seen[r] {
			buf.WriteRune(r)
		}
	}
	return Alphabet(buf.String()), nil
}

// Contains reports whether r is a member of this alphabet.
func (a Alphabet) Contains(r rune) bool {
	return strings.ContainsRune(string(a), r)
}

// Index returns the offset of r in a, or -1 if r is not a member of a.
func (a Alphabet) Index(r rune) int { return strings.IndexRune(string(a), r) }

// Len returns the number of letters in a.
func (a Alphabet) Len() int { return len(a) }

// Implementations of the flag.Value and flag.Getter interfaces.

func (a Alphabet) String() string { return string(a) }
func (a Alphabet) Get() any       { return string(a) }

// Set implements the flag.Value interface.
func (a *Alphabet) Set(s string) error {
	if s == "" {
		return errors.New("invalid alphabet")
	}
	*a = Alphabet(s)
	return nil
}

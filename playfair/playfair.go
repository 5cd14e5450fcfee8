// Package playfair implements the Playfair digraph cipher over a 5×5 grid of
// letters derived from a key.
//
// The grid is laid out row-major from the distinct letters of the key in order
// of first occurrence, followed by the unused letters of the 25-letter
// alphabet that omits J. Text is reduced to its letters, uppercased, and padded
// to even length with X; each pair of letters is then replaced according to
// its position in the grid:
//
//   - Letters in the same row are replaced by their right neighbours.
//   - Letters in the same column are replaced by the letters below them.
//   - Otherwise the letters are replaced by the letters in their own row at
//     the column of the other.
//
// Rows and columns wrap around. Unlike the textbook cipher, no filler letter
// is inserted between a doubled pair.
package playfair

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/creachadair/classic/alphabet"
)

// Size is the number of rows and columns in a Playfair grid.
const Size = 5

// Pad is the letter appended to make processed text even in length.
const Pad = 'X'

// ErrInvalidCharacter is reported when a letter of the text does not occur in
// the grid.
var ErrInvalidCharacter = errors.New("character not in key matrix")

// Options control the behaviour of a Cipher. A nil *Options is ready for use
// and provides the literal behaviour.
type Options struct {
	// Invertible, if true, makes decryption the inverse of encryption by
	// shifting left and up for letters in the same row or column. It also
	// merges J into I in both the key and the text, so that every letter of
	// the text has a place in the grid.
	//
	// If false, decryption applies the same shifts as encryption, and a key
	// containing J takes J into the grid in place of the last unused letter.
	Invertible bool
}

func (o *Options) invertible() bool { return o != nil && o.Invertible }

// A Cipher is a Playfair cipher with a fixed key matrix.
// A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	grid       [Size][Size]byte
	invertible bool
}

// New constructs a Playfair cipher whose grid is derived from key. It reports
// an error wrapping alphabet.ErrEmptyKey if key contains no letters.
func New(key string, opts *Options) (*Cipher, error) {
	var cells alphabet.Alphabet
	var err error
	if opts.invertible() {
		cells, err = alphabet.Keyed(alphabet.Playfair, key, mergeJ)
	} else {
		cells, err = literalCells(key)
	}
	if err != nil {
		return nil, fmt.Errorf("playfair: %w", err)
	}
	c := &Cipher{invertible: opts.invertible()}
	for i := range Size * Size {
		c.grid[i/Size][i%Size] = cells[i]
	}
	return c, nil
}

// literalCells returns the letters of the grid for key without merging J.
func literalCells(key string) (alphabet.Alphabet, error) {
	cells, err := alphabet.Keyed(alphabet.Uppercase, key, unicode.ToUpper)
	if err != nil {
		return "", err
	}
	if strings.ContainsAny(key, "Jj") {
		// J came from the key, so it keeps its cell and the last fill letter
		// falls off the end of the grid.
		return cells[:Size*Size], nil
	}
	return alphabet.Alphabet(strings.Replace(string(cells), "J", "", 1)), nil
}

// mergeJ folds r to uppercase and maps J to I.
func mergeJ(r rune) rune {
	if r = unicode.ToUpper(r); r == 'J' {
		return 'I'
	}
	return r
}

// Matrix returns a copy of the key matrix of c.
func (c *Cipher) Matrix() [Size][Size]byte { return c.grid }

// String renders the key matrix as five lines of space-separated letters.
func (c *Cipher) String() string {
	var sb strings.Builder
	for i, row := range c.grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, b := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// FindPositions returns the row and column of the first cell of the key
// matrix containing ch. If ch does not occur in the matrix, ok is false.
func (c *Cipher) FindPositions(ch byte) (row, col int, ok bool) {
	for i, r := range c.grid {
		for j, b := range r {
			if b == ch {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// ProcessText discards all but the ASCII letters of text and converts them to
// uppercase. If the result has odd length, Pad is appended. An input with no
// letters yields "".
func ProcessText(text string) string {
	var buf []byte
	for i := 0; i < len(text); i++ {
		b := text[i]
		if 'a' <= b && b <= 'z' {
			buf = append(buf, b-'a'+'A')
		} else if 'A' <= b && b <= 'Z' {
			buf = append(buf, b)
		}
	}
	if len(buf)%2 == 1 {
		buf = append(buf, Pad)
	}
	return string(buf)
}

// Encrypt encrypts text with c.
func (c *Cipher) Encrypt(text string) (string, error) { return c.Transform(text, false) }

// Decrypt decrypts text with c. Unless c was constructed with the Invertible
// option, this is the same as Encrypt.
func (c *Cipher) Decrypt(text string) (string, error) { return c.Transform(text, true) }

// Transform processes text with ProcessText and replaces each pair of letters
// per the rules of the cipher. If decrypt is true and c is invertible, the
// row and column shifts are reversed.
func (c *Cipher) Transform(text string, decrypt bool) (string, error) {
	src := ProcessText(text)
	if c.invertible {
		src = strings.ReplaceAll(src, "J", "I")
	}
	shift := 1
	if decrypt && c.invertible {
		shift = Size - 1
	}

	out := make([]byte, len(src))
	for i := 0; i < len(src); i += 2 {
		r1, c1, ok := c.FindPositions(src[i])
		if !ok {
			return "", fmt.Errorf("playfair: letter %q at offset %d: %w", src[i], i, ErrInvalidCharacter)
		}
		r2, c2, ok := c.FindPositions(src[i+1])
		if !ok {
			return "", fmt.Errorf("playfair: letter %q at offset %d: %w", src[i+1], i+1, ErrInvalidCharacter)
		}

		switch {
		case r1 == r2:
			c1, c2 = (c1+shift)%Size, (c2+shift)%Size
		case c1 == c2:
			r1, r2 = (r1+shift)%Size, (r2+shift)%Size
		default:
			c1, c2 = c2, c1
		}
		out[i], out[i+1] = c.grid[r1][c1], c.grid[r2][c2]
	}
	return string(out), nil
}

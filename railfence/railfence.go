// Package railfence implements the Rail Fence transposition cipher.
//
// The text is written in a zigzag across a fixed number of rails, moving down
// from the top rail to the bottom and back up again, then read off one rail at
// a time from top to bottom. Every character of the input is transposed,
// including spaces and punctuation.
package railfence

import (
	"errors"
	"fmt"
)

// DefaultRails is the number of rails used when none is specified.
const DefaultRails = 2

// ErrInvalidRailCount is reported by New if the number of rails is less
// than 2.
var ErrInvalidRailCount = errors.New("rail count must be at least 2")

// A Cipher is a Rail Fence cipher with a fixed number of rails.
type Cipher struct {
	rails int
}

// New constructs a Rail Fence cipher with the given number of rails.
func New(rails int) (*Cipher, error) {
	if rails < 2 {
		return nil, fmt.Errorf("railfence: %d rails: %w", rails, ErrInvalidRailCount)
	}
	return &Cipher{rails: rails}, nil
}

// Rails reports the number of rails in c.
func (c *Cipher) Rails() int { return c.rails }

// Pattern returns the rail on which each of n consecutive positions falls.
func (c *Cipher) Pattern(n int) []int {
	out := make([]int, n)
	rail, dir := 0, 1
	for i := range out {
		out[i] = rail
		if rail+dir < 0 || rail+dir >= c.rails {
			dir = -dir
		}
		rail += dir
	}
	return out
}

// order returns the positions of n characters in the order they are read off
// the rails.
func (c *Cipher) order(n int) []int {
	rows := make([][]int, c.rails)
	for i, r := range c.Pattern(n) {
		rows[r] = append(rows[r], i)
	}
	out := make([]int, 0, n)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

// Encrypt encrypts text with c.
func (c *Cipher) Encrypt(text string) string {
	src := []rune(text)
	out := make([]rune, 0, len(src))
	for _, pos := range c.order(len(src)) {
		out = append(out, src[pos])
	}
	return string(out)
}

// Decrypt decrypts text with c. For any string s, Decrypt(Encrypt(s)) == s.
func (c *Cipher) Decrypt(text string) string {
	src := []rune(text)
	out := make([]rune, len(src))
	for i, pos := range c.order(len(src)) {
		out[pos] = src[i]
	}
	return string(out)
}

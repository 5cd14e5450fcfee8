package cipher

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported ciphers.
type Kind int

const (
	// Playfair is the Playfair digraph cipher.
	Playfair Kind = iota + 1

	// RailFence is the Rail Fence transposition cipher.
	RailFence

	// Substitution is the keyword substitution cipher.
	Substitution
)

// Kinds lists all the supported ciphers in order.
var Kinds = []Kind{Playfair, RailFence, Substitution}

var kindNames = map[Kind]string{
	Playfair:     "Playfair",
	RailFence:    "RailFence",
	Substitution: "Substitution",
}

// ParseKind parses the name of a cipher. Names are not case sensitive, and
// hyphens, underscores and spaces are ignored, so "rail-fence" is RailFence.
func ParseKind(s string) (Kind, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for k, name := range kindNames {
		if strings.ToLower(name) == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Set implements the flag.Value interface.
func (k *Kind) Set(s string) error {
	v, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("kind %d: %w", int(k), ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(data []byte) error { return k.Set(string(data)) }

// Mode selects encryption or decryption.
type Mode int

const (
	// Encrypt converts plaintext to ciphertext.
	Encrypt Mode = iota + 1

	// Decrypt converts ciphertext to plaintext.
	Decrypt
)

// ParseMode parses the name of a mode, "encrypt" or "decrypt".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

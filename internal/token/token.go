package token

import (
	"crypto/rand"
	"fmt"
)

const (
	// Alphabet is the character set for minted tokens
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// MinLength is the minimum token length
	MinLength = 8
	// MaxLength is the maximum token length
	MaxLength = 50
	// DefaultLength is the length of minted tokens
	DefaultLength = 10
)

// Validate reports whether s is syntactically a plausible token: bounded
// length, alphanumeric plus underscore and hyphen. Anything else is
// rejected before a store lookup is attempted.
func Validate(s string) bool {
	if len(s) < MinLength || len(s) > MaxLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// New mints a random token of the given length from Alphabet. Tokens are
// immutable once issued, so they must be unguessable rather than dense.
func New(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		length = DefaultLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i := range buf {
		buf[i] = Alphabet[int(buf[i])%len(Alphabet)]
	}

	return string(buf), nil
}

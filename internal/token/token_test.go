package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid alphanumeric", input: "promo2024", want: true},
		{name: "valid with underscore and hyphen", input: "summer_sale-1", want: true},
		{name: "minimum length", input: "abcd1234", want: true},
		{name: "maximum length", input: strings.Repeat("a", 50), want: true},
		{name: "too short", input: "abc1234", want: false},
		{name: "too long", input: strings.Repeat("a", 51), want: false},
		{name: "empty", input: "", want: false},
		{name: "contains space", input: "promo 2024", want: false},
		{name: "contains slash", input: "promo/2024", want: false},
		{name: "contains dot", input: "promo.2024", want: false},
		{name: "contains percent encoding", input: "promo%202024", want: false},
		{name: "non-ascii", input: "promoção24", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("default length", func(t *testing.T) {
		tok, err := New(DefaultLength)
		require.NoError(t, err)
		assert.Len(t, tok, DefaultLength)
		assert.True(t, Validate(tok))
	})

	t.Run("custom length", func(t *testing.T) {
		tok, err := New(16)
		require.NoError(t, err)
		assert.Len(t, tok, 16)
	})

	t.Run("out of range length falls back to default", func(t *testing.T) {
		tok, err := New(3)
		require.NoError(t, err)
		assert.Len(t, tok, DefaultLength)

		tok, err = New(100)
		require.NoError(t, err)
		assert.Len(t, tok, DefaultLength)
	})

	t.Run("tokens use only the alphabet", func(t *testing.T) {
		tok, err := New(DefaultLength)
		require.NoError(t, err)
		for _, c := range tok {
			assert.Contains(t, Alphabet, string(c))
		}
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			tok, err := New(DefaultLength)
			require.NoError(t, err)
			assert.False(t, seen[tok], "minted token repeated: %s", tok)
			seen[tok] = true
		}
	})
}

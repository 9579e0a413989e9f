package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenFieldsOrder(t *testing.T) {
	tok := &Token{
		AccessToken: "abc",
		TokenType:   "Bearer",
		Expiry:      time.Unix(1700000600, 0),
		Extra: map[string]any{
			"scope":              "email profile",
			"expires_in":         float64(600),
			"access_token":       "abc",
			"not-before-policy":  float64(0),
			"refresh_expires_in": float64(0),
		},
	}

	want := []TokenField{
		{"access_token", "abc"},
		{"token_type", "Bearer"},
		{"expires_in", "600"},
		{"not-before-policy", "0"},
		{"refresh_expires_in", "0"},
		{"scope", "email profile"},
		{"expires_at", "1700000600"},
	}

	require.Equal(t, want, tok.Fields())
}

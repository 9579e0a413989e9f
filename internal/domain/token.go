package domain

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Bearer token issued by the identity provider.
// It is used for the remainder of a single run and never persisted or refreshed.
type Token struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time
	// Remaining response fields (expires_in, scope, ...) as returned by the provider.
	Extra map[string]any
}

// A single key/value pair of a token response.
type TokenField struct {
	Key   string
	Value string
}

// Fields lists the token's values in a stable order: access_token, token_type,
// the provider's extra fields sorted by key, then expires_at as a unix timestamp.
func (t *Token) Fields() []TokenField {
	out := []TokenField{
		{Key: "access_token", Value: t.AccessToken},
		{Key: "token_type", Value: t.TokenType},
	}

	keys := make([]string, 0, len(t.Extra))
	for k := range t.Extra {
		switch k {
		case "access_token", "token_type", "expires_at":
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		out = append(out, TokenField{Key: k, Value: formatTokenValue(t.Extra[k])})
	}

	if !t.Expiry.IsZero() {
		out = append(out, TokenField{Key: "expires_at", Value: strconv.FormatInt(t.Expiry.Unix(), 10)})
	}

	return out
}

func formatTokenValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

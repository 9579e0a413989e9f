package ports

import (
	"context"
	"sentinel-snapshot/internal/domain"
)

// Contract for exchanging client credentials for a bearer token.
type Authenticator interface {
	// Perform a single token exchange. Implementations must not refresh.
	Token(ctx context.Context) (*domain.Token, error)
}

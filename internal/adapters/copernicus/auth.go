package copernicus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sentinel-snapshot/internal/domain"
	"sentinel-snapshot/internal/platform/obs"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// tokenExtraKeys are the non-standard fields Keycloak returns alongside the token.
var tokenExtraKeys = []string{
	"expires_in",
	"refresh_expires_in",
	"refresh_token",
	"id_token",
	"scope",
	"session_state",
	"not-before-policy",
}

// Authenticator implements the client-credentials grant against the
// Copernicus identity provider. Each call to Token performs one exchange.
type Authenticator struct {
	cfg     clientcredentials.Config
	session *http.Client
	logger  *slog.Logger
}

func NewAuthenticator(
	clientID string,
	clientSecret string,
	tokenURL string,
	session *http.Client,
	logger *slog.Logger,
) (*Authenticator, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		return nil, errors.New("copernicus authenticator: client id and secret must be non-empty")
	}
	if logger == nil {
		return nil, errors.New("copernicus authenticator: logger is nil")
	}
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if session == nil {
		session = NewHTTPClient(DefaultTimeout)
	}

	return &Authenticator{
		cfg: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			// The identity provider expects client_id in the form body.
			AuthStyle: oauth2.AuthStyleInParams,
		},
		session: session,
		logger:  logger,
	}, nil
}

// Token exchanges the client credentials for a bearer token.
func (a *Authenticator) Token(ctx context.Context) (_ *domain.Token, err error) {
	defer obs.Time(ctx, a.logger, "copernicus.Token")(&err)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.session)

	tok, err := a.cfg.Token(ctx)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			return nil, fmt.Errorf("authenticate: token endpoint returned %d: %w", re.Response.StatusCode, err)
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	out := &domain.Token{
		AccessToken: tok.AccessToken,
		TokenType:   tok.Type(),
		Expiry:      tok.Expiry,
		Extra:       make(map[string]any),
	}
	for _, k := range tokenExtraKeys {
		if v := tok.Extra(k); v != nil {
			out.Extra[k] = v
		}
	}

	return out, nil
}

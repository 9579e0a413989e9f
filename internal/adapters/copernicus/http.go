package copernicus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sentinel-snapshot/internal/domain"
	"strings"
)

// APIError is a non-200 answer from the Process API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("process API: HTTP %d: %s", e.StatusCode, e.Body)
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	url string,
	token *domain.Token,
	accept string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	authorize(req, token)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executes req and returns the full body of a 200 response.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}
	return b, nil
}

// authorize sets the bearer header. The token type is normalised the same way
// the oauth2 package does it, so "bearer" from the provider becomes "Bearer".
func authorize(req *http.Request, token *domain.Token) {
	if token == nil || token.AccessToken == "" {
		return
	}

	typ := token.TokenType
	if typ == "" || strings.EqualFold(typ, "bearer") {
		typ = "Bearer"
	}
	req.Header.Set("Authorization", typ+" "+token.AccessToken)
}

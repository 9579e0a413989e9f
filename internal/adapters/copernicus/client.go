package copernicus

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultTokenURL is the Copernicus Data Space identity provider.
	DefaultTokenURL = "https://identity.dataspace.copernicus.eu/auth/realms/CDSE/protocol/openid-connect/token"

	// DefaultProcessURL is the Sentinel Hub Process API endpoint.
	DefaultProcessURL = "https://sh.dataspace.copernicus.eu/api/v1/process"

	DefaultTimeout = 2 * time.Minute
)

// Client implements ImageryProvider using the Sentinel Hub Process API.
//
// It performs exactly one POST per call. Non-200 responses are returned as
// *APIError and are never retried.
type Client struct {
	session    *http.Client
	processURL string
	logger     *slog.Logger
}

// NewClient builds a Process API client. An empty processURL selects
// DefaultProcessURL; a nil session gets a client with DefaultTimeout.
func NewClient(processURL string, session *http.Client, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("copernicus client: logger is nil")
	}
	if processURL == "" {
		processURL = DefaultProcessURL
	}
	if session == nil {
		session = NewHTTPClient(DefaultTimeout)
	}

	return &Client{
		session:    session,
		processURL: processURL,
		logger:     logger,
	}, nil
}

// NewHTTPClient returns the client shared by the token exchange and the image request.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

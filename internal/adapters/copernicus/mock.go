package copernicus

import (
	"context"
	"sentinel-snapshot/internal/domain"
)

// MockAuthenticator returns a fixed token or error and counts exchanges.
type MockAuthenticator struct {
	Tok   *domain.Token
	Err   error
	Calls int
}

func (m *MockAuthenticator) Token(ctx context.Context) (*domain.Token, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tok, nil
}

// MockImageryProvider returns fixed bytes or error and records the last call.
type MockImageryProvider struct {
	Image []byte
	Err   error
	Calls int

	LastToken   *domain.Token
	LastRequest domain.ImageRequest
	LastDims    domain.ImageDimensions
}

func (m *MockImageryProvider) FetchImage(
	ctx context.Context,
	token *domain.Token,
	req domain.ImageRequest,
	dims domain.ImageDimensions,
) ([]byte, error) {
	m.Calls++
	m.LastToken = token
	m.LastRequest = req
	m.LastDims = dims
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Image, nil
}

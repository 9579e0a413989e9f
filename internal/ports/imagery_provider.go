package ports

import (
	"context"
	"sentinel-snapshot/internal/domain"
)

// Contract for rendering a satellite image of a bounding box.
type ImageryProvider interface {
	// Return the raw image bytes for the request at the given output size.
	FetchImage(ctx context.Context, token *domain.Token, req domain.ImageRequest, dims domain.ImageDimensions) ([]byte, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sentinel-snapshot/internal/domain"
	"sentinel-snapshot/internal/ports"
)

// Outcome of a successful snapshot.
type SnapshotResult struct {
	Dimensions domain.ImageDimensions
	Path       string
	Bytes      int
}

// FetchToken performs the token exchange on its own, for printing the token.
func FetchToken(ctx context.Context, auth ports.Authenticator) (*domain.Token, error) {
	if auth == nil {
		return nil, errors.New("fetch token: authenticator must be non-nil")
	}

	tok, err := auth.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch token: %w", err)
	}
	return tok, nil
}

// Snapshot renders one image of req.Box and writes it to req.Filename.
//
// Geometry is computed before any network call, so invalid input never
// reaches the identity provider. The output file is written only after
// the Process API answered 200.
func Snapshot(
	ctx context.Context,
	req domain.ImageRequest,
	auth ports.Authenticator,
	provider ports.ImageryProvider,
	store ports.ImageStore,
	logger *slog.Logger,
) (*SnapshotResult, error) {
	if auth == nil || provider == nil || store == nil {
		return nil, errors.New("snapshot: authenticator, provider and store must be non-nil")
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	dims, err := domain.ComputeDimensions(req.Box, req.Height, domain.MaxWidth)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	logger.Info("final image dimensions", "width", dims.Width, "height", dims.Height)

	tok, err := FetchToken(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	image, err := provider.FetchImage(ctx, tok, req, dims)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	logger.Info("saving image", "path", req.Filename, "bytes", len(image))
	if err := store.WriteImage(req.Filename, image); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	return &SnapshotResult{
		Dimensions: dims,
		Path:       req.Filename,
		Bytes:      len(image),
	}, nil
}

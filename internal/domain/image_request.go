package domain

import (
	"fmt"
	"strings"
)

// Output formats accepted by the Process API.
const (
	FormatJPEG = "image/jpeg"
	FormatPNG  = "image/png"
	FormatTIFF = "image/tiff"
)

// Represents a single snapshot the user asked for.
// It is built once per invocation from CLI options and discarded afterwards.
type ImageRequest struct {
	Filename   string
	Height     int
	Box        BoundingBox
	Format     string
	Quality    int
	Evalscript string
	Brightness float64
}

// Validate checks the request fields that do not depend on the remote service.
func (r ImageRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Filename) == "" {
		errs = append(errs, "filename is required")
	}
	if r.Height <= 0 {
		errs = append(errs, fmt.Sprintf("height must be positive, got %d", r.Height))
	}
	if r.Quality < 0 || r.Quality > 100 {
		errs = append(errs, fmt.Sprintf("quality must be 0-100, got %d", r.Quality))
	}
	if strings.TrimSpace(r.Format) == "" {
		errs = append(errs, "format is required")
	}
	if r.Brightness < 0 {
		errs = append(errs, fmt.Sprintf("brightness must not be negative, got %g", r.Brightness))
	}
	if err := r.Box.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("image request: %s: %w", strings.Join(errs, "; "), ErrInvalidArgument)
	}
	return nil
}

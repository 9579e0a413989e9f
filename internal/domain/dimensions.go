package domain

import (
	"fmt"
	"math"
)

const (
	// MaxWidth is the widest image the Process API accepts.
	MaxWidth = 2500

	// kmPerDegree approximates the length of one degree of latitude.
	kmPerDegree = 111.0
)

// Output size in pixels and the ground aspect ratio it was derived from.
type ImageDimensions struct {
	Width       int
	Height      int
	AspectRatio float64
}

func (d ImageDimensions) String() string { return fmt.Sprintf("%dx%d", d.Width, d.Height) }

// ComputeDimensions derives the pixel width from the requested height and the
// box's ground aspect ratio.
//
// The east-west distance is scaled by cos(mean latitude) to account for
// meridian convergence. This is a flat-earth approximation that is fine for
// picking an image size and unsuitable for geodesy or GIS work.
//
// When the width exceeds maxWidth it is clamped and the height is recomputed
// from the same aspect ratio.
func ComputeDimensions(box BoundingBox, height int, maxWidth int) (ImageDimensions, error) {
	if height <= 0 {
		return ImageDimensions{}, fmt.Errorf("compute dimensions: height must be positive, got %d: %w", height, ErrInvalidArgument)
	}
	if maxWidth <= 0 {
		return ImageDimensions{}, fmt.Errorf("compute dimensions: max width must be positive, got %d: %w", maxWidth, ErrInvalidArgument)
	}
	if err := box.Validate(); err != nil {
		return ImageDimensions{}, fmt.Errorf("compute dimensions: %w", err)
	}

	northSouthKm := box.LatSpan() * kmPerDegree
	eastWestKm := box.LngSpan() * kmPerDegree * math.Cos(box.MeanLat()*math.Pi/180)
	ratio := eastWestKm / northSouthKm

	// Compare before converting: a huge height overflows int.
	var width int
	if w := math.Round(float64(height) * ratio); w > float64(maxWidth) {
		width = maxWidth
		height = int(math.Round(float64(width) / ratio))
	} else {
		width = int(w)
	}

	// Extremely thin boxes can round to zero.
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return ImageDimensions{Width: width, Height: height, AspectRatio: ratio}, nil
}

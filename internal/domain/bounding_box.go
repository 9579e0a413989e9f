package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// BoundingBox is a WGS84 rectangle given as its south-west and north-east corners.
// The wire order is lng0, lat0, lng1, lat1.
type BoundingBox struct {
	bound orb.Bound
}

func NewBoundingBox(southWest, northEast Coordinates) BoundingBox {
	return BoundingBox{bound: orb.Bound{Min: southWest.point(), Max: northEast.point()}}
}

// ParseBoundingBox parses "lng0,lat0,lng1,lat1". Whitespace around each value is ignored.
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, fmt.Errorf(
			"parse bounding box %q: expected 4 comma-separated values, got %d: %w",
			s, len(parts), ErrInvalidArgument,
		)
	}

	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BoundingBox{}, fmt.Errorf("parse bounding box %q: value %d: %w: %v", s, i+1, ErrInvalidArgument, err)
		}
		vals[i] = v
	}

	return NewBoundingBox(
		Coordinates{Lon: vals[0], Lat: vals[1]},
		Coordinates{Lon: vals[2], Lat: vals[3]},
	), nil
}

func (b BoundingBox) SouthWest() Coordinates {
	return Coordinates{Lon: b.bound.Left(), Lat: b.bound.Bottom()}
}

func (b BoundingBox) NorthEast() Coordinates {
	return Coordinates{Lon: b.bound.Right(), Lat: b.bound.Top()}
}

// LngSpan is the east-west extent in degrees.
func (b BoundingBox) LngSpan() float64 { return b.bound.Right() - b.bound.Left() }

// LatSpan is the north-south extent in degrees.
func (b BoundingBox) LatSpan() float64 { return b.bound.Top() - b.bound.Bottom() }

// MeanLat is the latitude halfway between the two edges.
func (b BoundingBox) MeanLat() float64 { return b.bound.Center().Lat() }

// Return the box as [lng0, lat0, lng1, lat1] for external API compatibility.
func (b BoundingBox) BBox() []float64 {
	return append(b.SouthWest().CoordsToList(), b.NorthEast().CoordsToList()...)
}

// Validate rejects boxes that would produce a negative, zero or infinite aspect ratio.
func (b BoundingBox) Validate() error {
	for _, v := range b.BBox() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("bounding box %v: coordinates must be finite: %w", b.BBox(), ErrInvalidArgument)
		}
	}

	sw, ne := b.SouthWest(), b.NorthEast()
	if sw.Lon < -180 || ne.Lon > 180 {
		return fmt.Errorf("bounding box %v: longitude must be within [-180, 180]: %w", b.BBox(), ErrInvalidArgument)
	}
	if sw.Lat < -90 || ne.Lat > 90 {
		return fmt.Errorf("bounding box %v: latitude must be within [-90, 90]: %w", b.BBox(), ErrInvalidArgument)
	}

	if ne.Lon <= sw.Lon {
		return fmt.Errorf("bounding box %v: lng1 must be greater than lng0: %w", b.BBox(), ErrInvalidArgument)
	}
	if ne.Lat <= sw.Lat {
		return fmt.Errorf("bounding box %v: lat1 must be greater than lat0: %w", b.BBox(), ErrInvalidArgument)
	}

	return nil
}

func (b BoundingBox) String() string {
	bb := b.BBox()
	return fmt.Sprintf("%g,%g,%g,%g", bb[0], bb[1], bb[2], bb[3])
}

package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidFactor is returned for non-positive or non-finite scale factors
	ErrInvalidFactor = errors.New("raster: invalid scale factor")

	// ErrTooLarge is returned when a scaled side would exceed MaxRasterSide
	ErrTooLarge = errors.New("raster: scaled image too large")
)

// MaxRasterSide caps the width and height of a scaled raster
const MaxRasterSide = 8192

// ScaledSize returns round(w*factor) x round(h*factor), never below 1x1
func ScaledSize(w, h int, factor float64) (int, int) {
	nw := int(math.Round(float64(w) * factor))
	nh := int(math.Round(float64(h) * factor))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

// CheckScale reports whether a w x h raster can be scaled by factor without
// exceeding MaxRasterSide.
func CheckScale(w, h int, factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	if math.Round(float64(max(w, h))*factor) > MaxRasterSide {
		return fmt.Errorf("%w: %dx%d by %v exceeds %d px", ErrTooLarge, w, h, factor, MaxRasterSide)
	}
	return nil
}

// Scale resamples src by factor in both axes with Catmull-Rom filtering.
func Scale(src image.Image, factor float64) (*image.NRGBA, error) {
	b := src.Bounds()
	if err := CheckScale(b.Dx(), b.Dy(), factor); err != nil {
		return nil, err
	}
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty raster", ErrDecode)
	}

	nw, nh := ScaledSize(b.Dx(), b.Dy(), factor)
	return imaging.Resize(src, nw, nh, imaging.CatmullRom), nil
}

package water

import (
	"fmt"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// PixelSize is the ground footprint of one pixel in meters.
type PixelSize struct {
	Width  float64
	Height float64
}

// SquarePixel builds a PixelSize for square pixels, e.g. SquarePixel(30)
// for Landsat.
func SquarePixel(size float64) PixelSize {
	return PixelSize{Width: size, Height: size}
}

func (p PixelSize) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: pixel size must be positive, got %vx%v", raster.ErrInvalidParameter, p.Width, p.Height)
	}
	return nil
}

// AreaKm2 is the ground area of one pixel in square kilometers.
func (p PixelSize) AreaKm2() float64 {
	return p.Width * p.Height / 1_000_000
}

// AreaM2 is the ground area of one pixel in square meters.
func (p PixelSize) AreaM2() float64 {
	return p.Width * p.Height
}

func validateMask(mask *raster.Mask) error {
	if mask == nil || len(mask.Data) == 0 {
		return fmt.Errorf("%w: mask has no elements", raster.ErrInvalidInput)
	}
	if len(mask.Data) != mask.Size() {
		return fmt.Errorf("%w: mask buffer has %d values for shape %dx%d", raster.ErrInvalidInput, len(mask.Data), mask.Height, mask.Width)
	}
	return nil
}

package raster

import "fmt"

// ValidateBands checks that the bands entering one index computation are
// usable together: at least one band, none nil or empty, all with identical
// shapes. It reads but never mutates its inputs.
func ValidateBands(bands ...*Grid) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: no bands provided", ErrInvalidInput)
	}
	for i, band := range bands {
		if band == nil {
			return fmt.Errorf("%w: band %d is nil", ErrInvalidInput, i)
		}
		if band.Size() == 0 || len(band.Data) == 0 {
			return fmt.Errorf("%w: band %d is empty", ErrInvalidInput, i)
		}
		if len(band.Data) != band.Size() {
			return fmt.Errorf("%w: band %d buffer has %d values for shape %dx%d", ErrInvalidInput, i, len(band.Data), band.Height, band.Width)
		}
	}
	first := bands[0]
	for _, band := range bands[1:] {
		if !first.SameShape(band) {
			return fmt.Errorf("%w: band shapes do not match: %dx%d != %dx%d", ErrShapeMismatch, first.Height, first.Width, band.Height, band.Width)
		}
	}
	return nil
}

package output

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// CreateChangeImage renders the difference between two water masks: gained
// water in blue, lost water in red, stable water in dark blue, stable land
// in light gray.
func CreateChangeImage(mask1, mask2 *raster.Mask, outputPath string) error {
	if mask1 == nil || mask2 == nil || len(mask1.Data) == 0 {
		return fmt.Errorf("%w: masks have no elements", raster.ErrInvalidInput)
	}
	if !mask1.SameShape(mask2) {
		return fmt.Errorf("%w: masks are %dx%d and %dx%d", raster.ErrShapeMismatch, mask1.Height, mask1.Width, mask2.Height, mask2.Width)
	}

	dc := gg.NewContext(mask1.Width, mask1.Height)
	for y := 0; y < mask1.Height; y++ {
		for x := 0; x < mask1.Width; x++ {
			before, after := mask1.At(y, x), mask2.At(y, x)
			switch {
			case before && after:
				dc.SetRGB(0, 0.15, 0.45)
			case !before && after:
				dc.SetRGB(0.1, 0.45, 0.95)
			case before && !after:
				dc.SetRGB(0.85, 0.15, 0.1)
			default:
				dc.SetRGB(0.9, 0.9, 0.9)
			}
			dc.SetPixel(x, y)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

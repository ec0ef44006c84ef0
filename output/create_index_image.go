package output

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// indexColor maps an index value in [-1,1] onto a diverging ramp: dry land
// in brown below zero, white at zero, water in blue above.
func indexColor(v float64) (r, g, b float64) {
	if math.IsNaN(v) {
		return 0.2, 0.2, 0.2
	}
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	if v < 0 {
		// brown (0.55, 0.38, 0.21) -> white
		t := v + 1
		return 0.55 + 0.45*t, 0.38 + 0.62*t, 0.21 + 0.79*t
	}
	// white -> blue (0.0, 0.3, 0.8)
	return 1 - v, 1 - 0.7*v, 1 - 0.2*v
}

// CreateIndexImage renders an index grid as a PNG using the diverging
// land/water color ramp.
func CreateIndexImage(index *raster.Grid, outputPath string) error {
	if err := raster.ValidateBands(index); err != nil {
		return err
	}

	dc := gg.NewContext(index.Width, index.Height)
	for y := 0; y < index.Height; y++ {
		for x := 0; x < index.Width; x++ {
			dc.SetRGB(indexColor(index.At(y, x)))
			dc.SetPixel(x, y)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// CreateCompareImage renders two same-shaped index grids side by side,
// separated by a thin black gap.
func CreateCompareImage(left, right *raster.Grid, outputPath string) error {
	if err := raster.ValidateBands(left, right); err != nil {
		return err
	}

	const gap = 2
	dc := gg.NewContext(left.Width*2+gap, left.Height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	for y := 0; y < left.Height; y++ {
		for x := 0; x < left.Width; x++ {
			dc.SetRGB(indexColor(left.At(y, x)))
			dc.SetPixel(x, y)
			dc.SetRGB(indexColor(right.At(y, x)))
			dc.SetPixel(x+left.Width+gap, y)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

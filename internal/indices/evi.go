package indices

import (
	"fmt"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// Standard MODIS EVI coefficients.
const (
	DefaultGain             = 2.5
	DefaultAerosolC1        = 6.0
	DefaultAerosolC2        = 7.5
	DefaultCanopyBackground = 1.0
)

// EVI is the Enhanced Vegetation Index,
// G*(NIR-Red)/(NIR+C1*Red-C2*Blue+L). The index is nominally unbounded but
// is clipped to [-1,1] here like the other indices. G must be positive and
// L non-negative.
func EVI(nir, red, blue *raster.Grid, g, c1, c2, l float64) (*raster.Grid, error) {
	if err := raster.ValidateBands(nir, red, blue); err != nil {
		return nil, err
	}
	if g <= 0 {
		return nil, fmt.Errorf("%w: EVI gain G must be positive, got %v", raster.ErrInvalidParameter, g)
	}
	if l < 0 {
		return nil, fmt.Errorf("%w: EVI canopy adjustment L must be non-negative, got %v", raster.ErrInvalidParameter, l)
	}

	out := raster.NewGrid(nir.Height, nir.Width)
	for i := range out.Data {
		denominator := nir.Data[i] + c1*red.Data[i] - c2*blue.Data[i] + l
		v := g * (nir.Data[i] - red.Data[i]) / denominator
		out.Data[i] = clampIndex(v)
	}
	return out, nil
}

// EVIDefault computes EVI with the standard MODIS coefficients.
func EVIDefault(nir, red, blue *raster.Grid) (*raster.Grid, error) {
	return EVI(nir, red, blue, DefaultGain, DefaultAerosolC1, DefaultAerosolC2, DefaultCanopyBackground)
}

package indices

import (
	"fmt"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// DefaultSoilFactor is the usual SAVI soil brightness correction for
// intermediate vegetation cover.
const DefaultSoilFactor = 0.5

// SAVI is the Soil Adjusted Vegetation Index,
// ((NIR-Red)/(NIR+Red+L))*(1+L), clipped to [-1,1]. L must be in [0,1]:
// 0 for very high vegetation cover, 1 for low cover.
func SAVI(nir, red *raster.Grid, l float64) (*raster.Grid, error) {
	if err := raster.ValidateBands(nir, red); err != nil {
		return nil, err
	}
	if l < 0 || l > 1 {
		return nil, fmt.Errorf("%w: SAVI soil factor L must be between 0 and 1, got %v", raster.ErrInvalidParameter, l)
	}

	out := raster.NewGrid(nir.Height, nir.Width)
	for i := range out.Data {
		v := ((nir.Data[i] - red.Data[i]) / (nir.Data[i] + red.Data[i] + l)) * (1 + l)
		out.Data[i] = clampIndex(v)
	}
	return out, nil
}

package indices

import (
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// normalizedDifference computes clip((a-b)/(a+b), -1, 1) per pixel. The
// division runs without an epsilon guard; any non-finite result (0/0,
// overflow, NaN inputs) is replaced with 0.0 before clipping, so a zero-sum
// pixel always yields 0 and the output never carries NaN or Inf.
func normalizedDifference(a, b *raster.Grid) *raster.Grid {
	out := raster.NewGrid(a.Height, a.Width)
	for i := range out.Data {
		v := (a.Data[i] - b.Data[i]) / (a.Data[i] + b.Data[i])
		out.Data[i] = clampIndex(v)
	}
	return out
}

func clampIndex(v float64) float64 {
	if !raster.IsFinite(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// NDVI is the Normalized Difference Vegetation Index, (NIR-Red)/(NIR+Red).
func NDVI(nir, red *raster.Grid) (*raster.Grid, error) {
	if err := raster.ValidateBands(nir, red); err != nil {
		return nil, err
	}
	return normalizedDifference(nir, red), nil
}

// NDWI is the Normalized Difference Water Index, (Green-NIR)/(Green+NIR).
// Positive values generally indicate open water.
func NDWI(green, nir *raster.Grid) (*raster.Grid, error) {
	if err := raster.ValidateBands(green, nir); err != nil {
		return nil, err
	}
	return normalizedDifference(green, nir), nil
}

// MNDWI is the Modified NDWI, (Green-SWIR)/(Green+SWIR), less sensitive to
// built-up noise than NDWI.
func MNDWI(green, swir *raster.Grid) (*raster.Grid, error) {
	if err := raster.ValidateBands(green, swir); err != nil {
		return nil, err
	}
	return normalizedDifference(green, swir), nil
}

// NDBI is the Normalized Difference Built-up Index, (SWIR-NIR)/(SWIR+NIR).
func NDBI(swir, nir *raster.Grid) (*raster.Grid, error) {
	if err := raster.ValidateBands(swir, nir); err != nil {
		return nil, err
	}
	return normalizedDifference(swir, nir), nil
}

package water

import (
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// WaterStatsResult summarizes a single water mask.
type WaterStatsResult struct {
	// TotalArea is the water surface in square kilometers.
	TotalArea float64
	// CoveragePercent is the share of water pixels over all pixels.
	CoveragePercent float64
}

// WaterStats computes the total water surface area and coverage of a mask.
func WaterStats(mask *raster.Mask, px PixelSize) (WaterStatsResult, error) {
	if err := validateMask(mask); err != nil {
		return WaterStatsResult{}, err
	}
	if err := px.Validate(); err != nil {
		return WaterStatsResult{}, err
	}

	waterPixels := mask.CountTrue()
	return WaterStatsResult{
		TotalArea:       float64(waterPixels) * px.AreaKm2(),
		CoveragePercent: float64(waterPixels) / float64(mask.Size()) * 100,
	}, nil
}

package water

import (
	"fmt"
	"math"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// WaterChangeResult describes the difference between two water masks,
// usually from two acquisition dates. All areas are square kilometers.
type WaterChangeResult struct {
	GainedArea float64
	LostArea   float64
	NetChange  float64
	// ChangePercent is NetChange relative to the first mask's water area.
	// When the first mask holds no water at all, the value is +Inf if any
	// water was gained and 0 otherwise. The infinity is an explicit
	// convention for "change from nothing", not an overflow.
	ChangePercent float64
}

// WaterChange compares two same-shaped water masks and reports gained, lost
// and net surface area.
func WaterChange(mask1, mask2 *raster.Mask, px PixelSize) (WaterChangeResult, error) {
	if err := validateMask(mask1); err != nil {
		return WaterChangeResult{}, err
	}
	if err := validateMask(mask2); err != nil {
		return WaterChangeResult{}, err
	}
	if !mask1.SameShape(mask2) {
		return WaterChangeResult{}, fmt.Errorf("%w: masks are %dx%d and %dx%d", raster.ErrShapeMismatch, mask1.Height, mask1.Width, mask2.Height, mask2.Width)
	}
	if err := px.Validate(); err != nil {
		return WaterChangeResult{}, err
	}

	var gained, lost, original int
	for i := range mask1.Data {
		switch {
		case !mask1.Data[i] && mask2.Data[i]:
			gained++
		case mask1.Data[i] && !mask2.Data[i]:
			lost++
		}
		if mask1.Data[i] {
			original++
		}
	}

	pixelArea := px.AreaKm2()
	result := WaterChangeResult{
		GainedArea: float64(gained) * pixelArea,
		LostArea:   float64(lost) * pixelArea,
	}
	result.NetChange = result.GainedArea - result.LostArea

	originalArea := float64(original) * pixelArea
	switch {
	case originalArea > 0:
		result.ChangePercent = result.NetChange / originalArea * 100
	case result.GainedArea > 0:
		result.ChangePercent = math.Inf(1)
	default:
		result.ChangePercent = 0
	}
	return result, nil
}

package water

import (
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// GetWaterBodies labels the individual water bodies of a mask and reports
// each one's surface area in square kilometers.
//
// minArea is an optional filter in square meters: regions smaller than it
// are erased back to background and the survivors are renumbered densely
// starting at 1 in their original label order. minArea <= 0 disables the
// filter. When nothing survives, the result is an all-zero label map and an
// empty area map, not an error.
func GetWaterBodies(mask *raster.Mask, px PixelSize, minArea float64) (*raster.Labels, map[int]float64, error) {
	if err := validateMask(mask); err != nil {
		return nil, nil, err
	}
	if err := px.Validate(); err != nil {
		return nil, nil, err
	}

	labels, count := LabelRegions(mask)

	// Per-label pixel counts, label 0 excluded.
	pixels := make([]int, count+1)
	for _, label := range labels.Data {
		pixels[label]++
	}

	pixelArea := px.AreaKm2()
	areas := make(map[int]float64, count)

	if minArea <= 0 {
		for label := 1; label <= count; label++ {
			areas[label] = float64(pixels[label]) * pixelArea
		}
		return labels, areas, nil
	}

	minPixels := minArea / px.AreaM2()
	remap := make([]int, count+1)
	next := 0
	for label := 1; label <= count; label++ {
		if float64(pixels[label]) >= minPixels {
			next++
			remap[label] = next
			areas[next] = float64(pixels[label]) * pixelArea
		}
	}

	for i, label := range labels.Data {
		labels.Data[i] = remap[label]
	}
	return labels, areas, nil
}

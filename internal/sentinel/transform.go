package sentinel

import (
	"fmt"

	"github.com/airbusgeo/godal"
)

// PixelToLonLat converts a pixel position to geographic WGS84 coordinates
// using the scene's geotransform, sampling the pixel center. When the scene
// has no projection the raw geotransform coordinates are returned as-is.
func PixelToLonLat(md Metadata, x, y int) (float64, float64, error) {
	gt := md.GeoTransform
	xCoord := gt[0] + gt[1]*(float64(x)+0.5) + gt[2]*(float64(y)+0.5)
	yCoord := gt[3] + gt[4]*(float64(x)+0.5) + gt[5]*(float64(y)+0.5)

	if md.Projection == "" {
		return xCoord, yCoord, nil
	}

	srcSR, err := godal.NewSpatialRefFromWKT(md.Projection)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse projection: %w", err)
	}
	defer srcSR.Close()
	dstSR, err := godal.NewSpatialRefFromEPSG(4326) // WGS84
	if err != nil {
		return 0, 0, err
	}
	defer dstSR.Close()

	if srcSR.IsSame(dstSR) {
		return xCoord, yCoord, nil
	}

	tr, err := godal.NewTransform(srcSR, dstSR)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create transform: %w", err)
	}
	defer tr.Close()

	xs := []float64{xCoord}
	ys := []float64{yCoord}
	if err := tr.TransformEx(xs, ys, nil, nil); err != nil {
		return 0, 0, fmt.Errorf("transform error: %w", err)
	}
	return xs[0], ys[0], nil
}

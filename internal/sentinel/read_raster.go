package sentinel

import (
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// Metadata carries the georeferencing of a scene. The analysis core passes
// it through untouched; only the output writers interpret it.
type Metadata struct {
	Width        int
	Height       int
	Projection   string
	GeoTransform [6]float64
	NoData       *float64
}

// PixelWidth is the ground width of one pixel in the raster's projection
// units, taken from the geotransform.
func (md Metadata) PixelWidth() float64 {
	return math.Abs(md.GeoTransform[1])
}

// PixelHeight is the ground height of one pixel.
func (md Metadata) PixelHeight() float64 {
	return math.Abs(md.GeoTransform[5])
}

// ReadRaster loads the first band of a raster file into a Grid. Pixels equal
// to the band's nodata value are converted to NaN so the analysis packages
// treat them as missing.
func ReadRaster(path string) (*raster.Grid, Metadata, error) {
	dataset, err := godal.Open(path)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to open raster file: %w", err)
	}
	defer dataset.Close()

	structure := dataset.Structure()
	width, height := structure.SizeX, structure.SizeY

	band := dataset.Bands()[0]
	data := make([]float64, width*height)
	if err := band.Read(0, 0, data, width, height); err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to read raster data: %w", err)
	}

	md := Metadata{
		Width:      width,
		Height:     height,
		Projection: dataset.Projection(),
	}
	if gt, err := dataset.GeoTransform(); err == nil {
		md.GeoTransform = gt
	}
	if nodata, ok := band.NoData(); ok {
		md.NoData = &nodata
		for i, v := range data {
			if v == nodata {
				data[i] = math.NaN()
			}
		}
	}

	grid, err := raster.FromBuffer(data, height, width)
	if err != nil {
		return nil, Metadata{}, err
	}
	return grid, md, nil
}

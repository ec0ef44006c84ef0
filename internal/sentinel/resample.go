package sentinel

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// ResampleMethod selects the interpolation used when rescaling a grid.
type ResampleMethod string

const (
	ResampleNearest  ResampleMethod = "nearest"
	ResampleBilinear ResampleMethod = "bilinear"
	ResampleCubic    ResampleMethod = "cubic"
)

func (m ResampleMethod) alg() (godal.ResamplingAlg, error) {
	switch m {
	case ResampleNearest:
		return godal.Nearest, nil
	case ResampleBilinear:
		return godal.Bilinear, nil
	case ResampleCubic:
		return godal.Cubic, nil
	default:
		return godal.Nearest, fmt.Errorf("%w: unknown resample method %q", raster.ErrInvalidParameter, m)
	}
}

// Resample rescales a grid to the target shape through an in-memory GDAL
// dataset, so the interpolation matches what a warp of the source file would
// produce.
func Resample(grid *raster.Grid, height, width int, method ResampleMethod) (*raster.Grid, error) {
	if err := raster.ValidateBands(grid); err != nil {
		return nil, err
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: target shape must be positive, got %dx%d", raster.ErrInvalidParameter, height, width)
	}
	alg, err := method.alg()
	if err != nil {
		return nil, err
	}

	dataset, err := godal.Create(godal.Memory, "", 1, godal.Float64, grid.Width, grid.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory dataset: %w", err)
	}
	defer dataset.Close()

	band := dataset.Bands()[0]
	if err := band.Write(0, 0, grid.Data, grid.Width, grid.Height); err != nil {
		return nil, fmt.Errorf("failed to write raster data: %w", err)
	}

	data := make([]float64, width*height)
	err = band.Read(0, 0, data, width, height,
		godal.Window(grid.Width, grid.Height),
		godal.Resampling(alg),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read resampled data: %w", err)
	}
	return raster.FromBuffer(data, height, width)
}

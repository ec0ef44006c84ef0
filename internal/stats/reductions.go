package stats

import (
	"fmt"
	"math"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// validateGrid rejects the inputs no reduction can produce a value for:
// empty grids and grids where every pixel is NaN.
func validateGrid(g *raster.Grid) error {
	if g == nil || len(g.Data) == 0 {
		return fmt.Errorf("%w: grid has no elements", raster.ErrEmptyInput)
	}
	for _, v := range g.Data {
		if !math.IsNaN(v) {
			return nil
		}
	}
	return fmt.Errorf("%w: grid contains only NaN values", raster.ErrAllInvalid)
}

// Sum adds all pixels, ignoring NaN.
func Sum(g *raster.Grid) (float64, error) {
	if err := validateGrid(g); err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range g.Data {
		if !math.IsNaN(v) {
			total += v
		}
	}
	return total, nil
}

// Mean averages all pixels, ignoring NaN.
func Mean(g *raster.Grid) (float64, error) {
	if err := validateGrid(g); err != nil {
		return 0, err
	}
	total, count := 0.0, 0
	for _, v := range g.Data {
		if !math.IsNaN(v) {
			total += v
			count++
		}
	}
	return total / float64(count), nil
}

// Std is the population standard deviation over non-NaN pixels.
func Std(g *raster.Grid) (float64, error) {
	mean, err := Mean(g)
	if err != nil {
		return 0, err
	}
	total, count := 0.0, 0
	for _, v := range g.Data {
		if !math.IsNaN(v) {
			d := v - mean
			total += d * d
			count++
		}
	}
	return math.Sqrt(total / float64(count)), nil
}

// Min returns the smallest non-NaN pixel.
func Min(g *raster.Grid) (float64, error) {
	if err := validateGrid(g); err != nil {
		return 0, err
	}
	min := math.Inf(1)
	for _, v := range g.Data {
		if !math.IsNaN(v) && v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the largest non-NaN pixel.
func Max(g *raster.Grid) (float64, error) {
	if err := validateGrid(g); err != nil {
		return 0, err
	}
	max := math.Inf(-1)
	for _, v := range g.Data {
		if !math.IsNaN(v) && v > max {
			max = v
		}
	}
	return max, nil
}

package stats

import (
	"fmt"
	"math"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// Axis selects the direction a reduction collapses: AxisRows collapses rows
// and yields one value per column, AxisColumns collapses columns and yields
// one value per row.
type Axis int

const (
	AxisRows    Axis = 0
	AxisColumns Axis = 1
)

// reduceAxis walks every lane along the axis and folds its non-NaN pixels.
// A lane with no valid pixel fails with ErrAllInvalid, matching the
// whole-grid behavior.
func reduceAxis(g *raster.Grid, axis Axis, fold func(lane []float64) float64) ([]float64, error) {
	if g == nil || len(g.Data) == 0 {
		return nil, fmt.Errorf("%w: grid has no elements", raster.ErrEmptyInput)
	}
	if axis != AxisRows && axis != AxisColumns {
		return nil, fmt.Errorf("%w: axis must be 0 or 1, got %d", raster.ErrInvalidParameter, axis)
	}

	var lanes, laneLen, stride, step int
	if axis == AxisRows {
		lanes, laneLen = g.Width, g.Height
		stride, step = 1, g.Width
	} else {
		lanes, laneLen = g.Height, g.Width
		stride, step = g.Width, 1
	}

	out := make([]float64, lanes)
	lane := make([]float64, 0, laneLen)
	for i := 0; i < lanes; i++ {
		lane = lane[:0]
		for j := 0; j < laneLen; j++ {
			v := g.Data[i*stride+j*step]
			if !math.IsNaN(v) {
				lane = append(lane, v)
			}
		}
		if len(lane) == 0 {
			return nil, fmt.Errorf("%w: no valid values along axis %d at index %d", raster.ErrAllInvalid, axis, i)
		}
		out[i] = fold(lane)
	}
	return out, nil
}

func SumAxis(g *raster.Grid, axis Axis) ([]float64, error) {
	return reduceAxis(g, axis, func(lane []float64) float64 {
		total := 0.0
		for _, v := range lane {
			total += v
		}
		return total
	})
}

func MeanAxis(g *raster.Grid, axis Axis) ([]float64, error) {
	return reduceAxis(g, axis, func(lane []float64) float64 {
		total := 0.0
		for _, v := range lane {
			total += v
		}
		return total / float64(len(lane))
	})
}

func StdAxis(g *raster.Grid, axis Axis) ([]float64, error) {
	return reduceAxis(g, axis, func(lane []float64) float64 {
		mean := 0.0
		for _, v := range lane {
			mean += v
		}
		mean /= float64(len(lane))
		total := 0.0
		for _, v := range lane {
			d := v - mean
			total += d * d
		}
		return math.Sqrt(total / float64(len(lane)))
	})
}

func MinAxis(g *raster.Grid, axis Axis) ([]float64, error) {
	return reduceAxis(g, axis, func(lane []float64) float64 {
		min := lane[0]
		for _, v := range lane[1:] {
			if v < min {
				min = v
			}
		}
		return min
	})
}

func MaxAxis(g *raster.Grid, axis Axis) ([]float64, error) {
	return reduceAxis(g, axis, func(lane []float64) float64 {
		max := lane[0]
		for _, v := range lane[1:] {
			if v > max {
				max = v
			}
		}
		return max
	})
}

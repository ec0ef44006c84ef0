package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// Median is Percentile at q=50.
//
// Unlike Sum/Mean/Std/Min/Max, Median/Percentile/CountNonzero/Unique do not
// reject all-NaN input; a NaN pixel propagates into the result instead. This
// asymmetry is kept deliberately for compatibility with the original
// behavior (see DESIGN.md).
func Median(g *raster.Grid) (float64, error) {
	return Percentile(g, 50)
}

// Percentile returns the qth percentile (0..100) with linear interpolation
// between the two nearest order statistics. Any NaN pixel makes the result
// NaN.
func Percentile(g *raster.Grid, q float64) (float64, error) {
	if g == nil || len(g.Data) == 0 {
		return 0, fmt.Errorf("%w: grid has no elements", raster.ErrEmptyInput)
	}
	if q < 0 || q > 100 {
		return 0, fmt.Errorf("%w: percentile must be between 0 and 100, got %v", raster.ErrInvalidParameter, q)
	}
	for _, v := range g.Data {
		if math.IsNaN(v) {
			return math.NaN(), nil
		}
	}

	sorted := make([]float64, len(g.Data))
	copy(sorted, g.Data)
	sort.Float64s(sorted)

	rank := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

// CountNonzero counts pixels that are not exactly 0. NaN counts as nonzero.
func CountNonzero(g *raster.Grid) int {
	if g == nil {
		return 0
	}
	n := 0
	for _, v := range g.Data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Unique returns the sorted distinct values and their occurrence counts.
func Unique(g *raster.Grid) ([]float64, []int) {
	if g == nil || len(g.Data) == 0 {
		return nil, nil
	}
	counts := make(map[float64]int, 64)
	nan := 0
	for _, v := range g.Data {
		if math.IsNaN(v) {
			nan++
			continue
		}
		counts[v]++
	}

	values := make([]float64, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Float64s(values)

	out := make([]int, len(values))
	for i, v := range values {
		out[i] = counts[v]
	}
	if nan > 0 {
		values = append(values, math.NaN())
		out = append(out, nan)
	}
	return values, out
}

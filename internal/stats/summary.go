package stats

import (
	"fmt"
	"math"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// SummaryBins is the fixed bin count of the reporting histogram.
const SummaryBins = 50

// Histogram holds equal-width bin counts over [Edges[0], Edges[len-1]].
// len(Edges) == len(Counts)+1; the final bin includes its right edge.
type Histogram struct {
	Counts []int
	Edges  []float64
}

// Statistics is the fixed reporting summary of one raster.
type Statistics struct {
	Mean      float64
	Std       float64
	Min       float64
	Max       float64
	P25_50_75 [3]float64
	Hist      Histogram
}

// Summary computes the full reporting statistics of a grid: mean, standard
// deviation, min, max, quartiles and a 50-bin histogram.
func Summary(g *raster.Grid) (Statistics, error) {
	var s Statistics
	var err error

	if s.Mean, err = Mean(g); err != nil {
		return Statistics{}, err
	}
	if s.Std, err = Std(g); err != nil {
		return Statistics{}, err
	}
	if s.Min, err = Min(g); err != nil {
		return Statistics{}, err
	}
	if s.Max, err = Max(g); err != nil {
		return Statistics{}, err
	}
	for i, q := range []float64{25, 50, 75} {
		if s.P25_50_75[i], err = Percentile(g, q); err != nil {
			return Statistics{}, err
		}
	}
	if s.Hist, err = NewHistogram(g, SummaryBins); err != nil {
		return Statistics{}, err
	}
	return s, nil
}

// NewHistogram bins the non-NaN pixels of g into the given number of
// equal-width bins spanning the data range. A constant grid gets a range
// widened by 0.5 on each side so every pixel still lands in a bin.
func NewHistogram(g *raster.Grid, bins int) (Histogram, error) {
	if bins <= 0 {
		return Histogram{}, fmt.Errorf("%w: histogram needs at least one bin, got %d", raster.ErrInvalidParameter, bins)
	}
	min, err := Min(g)
	if err != nil {
		return Histogram{}, err
	}
	max, err := Max(g)
	if err != nil {
		return Histogram{}, err
	}
	if min == max {
		min -= 0.5
		max += 0.5
	}

	h := Histogram{
		Counts: make([]int, bins),
		Edges:  make([]float64, bins+1),
	}
	width := (max - min) / float64(bins)
	for i := 0; i <= bins; i++ {
		h.Edges[i] = min + width*float64(i)
	}
	h.Edges[bins] = max

	for _, v := range g.Data {
		if math.IsNaN(v) || v < min || v > max {
			continue
		}
		bin := int((v - min) / width)
		if bin >= bins {
			bin = bins - 1
		}
		h.Counts[bin]++
	}
	return h, nil
}

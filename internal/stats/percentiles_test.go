package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

func TestMedianAndPercentile(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 2, 3, 4}})

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
	}
	for _, tt := range tests {
		got, err := Percentile(g, tt.q)
		if err != nil {
			t.Fatalf("Percentile(%v) failed: %v", tt.q, err)
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("Percentile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}

	med, err := Median(mustGrid(t, [][]float64{{5, 1, 3}}))
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if med != 3 {
		t.Errorf("Median = %v, want 3", med)
	}
}

func TestPercentileErrors(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 2}})

	if _, err := Percentile(g, -1); !errors.Is(err, raster.ErrInvalidParameter) {
		t.Errorf("q=-1: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Percentile(g, 101); !errors.Is(err, raster.ErrInvalidParameter) {
		t.Errorf("q=101: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Percentile(&raster.Grid{}, 50); !errors.Is(err, raster.ErrEmptyInput) {
		t.Errorf("empty: got %v, want ErrEmptyInput", err)
	}
}

func TestPercentilePropagatesNaN(t *testing.T) {
	// Median/Percentile intentionally skip the all-NaN validation the
	// other reductions run; a NaN pixel flows into the result.
	g := mustGrid(t, [][]float64{{1, nan, 3}})
	got, err := Median(g)
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Median with NaN pixel = %v, want NaN", got)
	}
}

func TestCountNonzero(t *testing.T) {
	g := mustGrid(t, [][]float64{{0, 1, -2}, {0, 3, 0}})
	if got := CountNonzero(g); got != 3 {
		t.Errorf("CountNonzero = %d, want 3", got)
	}
}

func TestUnique(t *testing.T) {
	g := mustGrid(t, [][]float64{{2, 1, 2}, {3, 1, 2}})
	values, counts := Unique(g)

	wantValues := []float64{1, 2, 3}
	wantCounts := []int{2, 3, 1}
	if len(values) != len(wantValues) {
		t.Fatalf("got %d unique values, want %d", len(values), len(wantValues))
	}
	for i := range wantValues {
		if values[i] != wantValues[i] || counts[i] != wantCounts[i] {
			t.Errorf("unique[%d] = (%v, %d), want (%v, %d)", i, values[i], counts[i], wantValues[i], wantCounts[i])
		}
	}
}

package raster

import (
	"errors"
	"math"
	"testing"
)

func TestDiff(t *testing.T) {
	a := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	b := mustGrid(t, [][]float64{{2, 2}, {1, 8}})

	tests := []struct {
		name   string
		method DiffMethod
		want   []float64
	}{
		{"simple", DiffSimple, []float64{1, 0, -2, 4}},
		{"ratio", DiffRatio, []float64{2, 1, 1.0 / 3.0, 2}},
		{"norm", DiffNorm, []float64{1.0 / 3.0, 0, -0.5, 1.0 / 3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Diff(a, b, tt.method)
			if err != nil {
				t.Fatalf("Diff failed: %v", err)
			}
			for i, v := range got.Data {
				if math.Abs(v-tt.want[i]) > 1e-9 {
					t.Errorf("pixel %d: got %v, want %v", i, v, tt.want[i])
				}
			}
		})
	}
}

func TestDiffErrors(t *testing.T) {
	a := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	wide := mustGrid(t, [][]float64{{1, 2, 3}})

	if _, err := Diff(a, wide, DiffSimple); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("shape mismatch: got %v, want ErrShapeMismatch", err)
	}
	if _, err := Diff(a, a, DiffMethod("fancy")); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unknown method: got %v, want ErrInvalidParameter", err)
	}
}

package raster

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, rows [][]float64) *Grid {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return g
}

func TestValidateBands(t *testing.T) {
	a := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	b := mustGrid(t, [][]float64{{5, 6}, {7, 8}})
	wide := mustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tests := []struct {
		name    string
		bands   []*Grid
		wantErr error
	}{
		{"no bands", nil, ErrInvalidInput},
		{"nil band", []*Grid{a, nil}, ErrInvalidInput},
		{"empty band", []*Grid{{Width: 0, Height: 0}}, ErrInvalidInput},
		{"shape mismatch", []*Grid{a, wide}, ErrShapeMismatch},
		{"single band ok", []*Grid{a}, nil},
		{"matching bands ok", []*Grid{a, b}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBands(tt.bands...)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateBands returned %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateBands returned %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBandsDoesNotMutate(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	if err := ValidateBands(g, g); err != nil {
		t.Fatalf("ValidateBands failed: %v", err)
	}
	want := []float64{1, 2, 3, 4}
	for i, v := range g.Data {
		if v != want[i] {
			t.Fatalf("ValidateBands mutated data at %d: got %v, want %v", i, v, want[i])
		}
	}
}

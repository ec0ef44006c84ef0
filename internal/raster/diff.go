package raster

import "fmt"

type DiffMethod string

const (
	DiffSimple DiffMethod = "simple"
	DiffRatio  DiffMethod = "ratio"
	DiffNorm   DiffMethod = "norm"
)

// Diff computes a continuous change raster between two scenes of identical
// shape. "simple" is b-a, "ratio" is b/(a+1e-10), "norm" is the normalized
// difference (b-a)/(b+a+1e-10). Callers with mismatched shapes must resample
// first.
func Diff(a, b *Grid, method DiffMethod) (*Grid, error) {
	if err := ValidateBands(a, b); err != nil {
		return nil, err
	}

	const eps = 1e-10
	out := NewGrid(a.Height, a.Width)
	switch method {
	case DiffSimple:
		for i := range out.Data {
			out.Data[i] = b.Data[i] - a.Data[i]
		}
	case DiffRatio:
		for i := range out.Data {
			out.Data[i] = b.Data[i] / (a.Data[i] + eps)
		}
	case DiffNorm:
		for i := range out.Data {
			out.Data[i] = (b.Data[i] - a.Data[i]) / (b.Data[i] + a.Data[i] + eps)
		}
	default:
		return nil, fmt.Errorf("%w: unknown diff method %q", ErrInvalidParameter, method)
	}
	return out, nil
}

package raster

import "errors"

// Error kinds shared by every analysis package. Callers match them with
// errors.Is; raise sites wrap them with context via fmt.Errorf("%w: ...").
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrAllInvalid       = errors.New("all values invalid")
	ErrEmptyInput       = errors.New("empty input")
)

package raster

import (
	"fmt"
	"math"
)

// Grid is a single raster band: a dense row-major float64 buffer with its
// dimensions. NaN marks missing pixels. All analysis packages compute in
// float64 regardless of how the source raster stores its samples.
type Grid struct {
	Width  int
	Height int
	Data   []float64
}

func NewGrid(height, width int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
}

// FromBuffer wraps an existing row-major buffer without copying it.
func FromBuffer(data []float64, height, width int) (*Grid, error) {
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: buffer has %d values, expected %dx%d=%d", ErrInvalidInput, len(data), height, width, width*height)
	}
	return &Grid{Width: width, Height: height, Data: data}, nil
}

// FromRows copies nested rows into a flat grid. Every row must have the same
// length.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows given", ErrEmptyInput)
	}
	width := len(rows[0])
	g := NewGrid(len(rows), width)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrInvalidInput, y, len(row), width)
		}
		copy(g.Data[y*width:], row)
	}
	return g, nil
}

// FromIntRows converts integer samples (e.g. uint16 reflectance counts read
// as ints) into a float64 grid.
func FromIntRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows given", ErrEmptyInput)
	}
	width := len(rows[0])
	g := NewGrid(len(rows), width)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrInvalidInput, y, len(row), width)
		}
		for x, v := range row {
			g.Data[y*width+x] = float64(v)
		}
	}
	return g, nil
}

func (g *Grid) At(y, x int) float64 {
	return g.Data[y*g.Width+x]
}

func (g *Grid) Set(y, x int, v float64) {
	g.Data[y*g.Width+x] = v
}

func (g *Grid) Size() int {
	return g.Width * g.Height
}

func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.Width == other.Width && g.Height == other.Height
}

// GreaterThan builds a mask marking every pixel strictly above the threshold.
// NaN pixels never pass.
func (g *Grid) GreaterThan(threshold float64) *Mask {
	m := NewMask(g.Height, g.Width)
	for i, v := range g.Data {
		m.Data[i] = v > threshold
	}
	return m
}

// Mask is a boolean raster with the same layout as Grid.
type Mask struct {
	Width  int
	Height int
	Data   []bool
}

func NewMask(height, width int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Data:   make([]bool, width*height),
	}
}

// MaskFromRows copies nested bool rows into a flat mask.
func MaskFromRows(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows given", ErrEmptyInput)
	}
	width := len(rows[0])
	m := NewMask(len(rows), width)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrInvalidInput, y, len(row), width)
		}
		copy(m.Data[y*width:], row)
	}
	return m, nil
}

func (m *Mask) At(y, x int) bool {
	return m.Data[y*m.Width+x]
}

func (m *Mask) Set(y, x int, v bool) {
	m.Data[y*m.Width+x] = v
}

func (m *Mask) Size() int {
	return m.Width * m.Height
}

func (m *Mask) SameShape(other *Mask) bool {
	return other != nil && m.Width == other.Width && m.Height == other.Height
}

// CountTrue returns the number of set pixels.
func (m *Mask) CountTrue() int {
	n := 0
	for _, v := range m.Data {
		if v {
			n++
		}
	}
	return n
}

// Labels is an integer raster produced by connected-component labeling.
// 0 is background, positive values identify regions.
type Labels struct {
	Width  int
	Height int
	Data   []int
}

func NewLabels(height, width int) *Labels {
	return &Labels{
		Width:  width,
		Height: height,
		Data:   make([]int, width*height),
	}
}

func (l *Labels) At(y, x int) int {
	return l.Data[y*l.Width+x]
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

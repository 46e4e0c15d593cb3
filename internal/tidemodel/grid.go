package tidemodel

import "fmt"

// complexGrid is the storage backend for one constituent's harmonic
// amplitude grid: a flat array of complex values in either f32 or f64
// precision. Two concrete backing types share this interface rather than
// a single generic type with per-element dispatch on the hot path (see
// Float32Grid / Float64Grid).
type complexGrid interface {
	at(flatIndex int) complex128
	len() int
}

// Float32Grid stores a constituent's grid as pairs of float32 (real,
// imag), halving memory footprint relative to Float64Grid at the cost of
// precision — appropriate for large global models where the source data
// itself is f32.
type Float32Grid struct {
	data []complex64
}

// NewFloat32Grid builds a Float32Grid from row-major complex128 values,
// narrowing to complex64.
func NewFloat32Grid(values []complex128) *Float32Grid {
	g := &Float32Grid{data: make([]complex64, len(values))}
	for i, v := range values {
		g.data[i] = complex64(v)
	}
	return g
}

func (g *Float32Grid) at(i int) complex128 { return complex128(g.data[i]) }
func (g *Float32Grid) len() int            { return len(g.data) }

// Float64Grid stores a constituent's grid at full double precision.
type Float64Grid struct {
	data []complex128
}

// NewFloat64Grid builds a Float64Grid from row-major complex128 values.
func NewFloat64Grid(values []complex128) *Float64Grid {
	g := &Float64Grid{data: make([]complex128, len(values))}
	copy(g.data, values)
	return g
}

func (g *Float64Grid) at(i int) complex128 { return g.data[i] }
func (g *Float64Grid) len() int            { return len(g.data) }

// ShapeError reports that a grid handed to AddConstituent does not have
// the LonAxis.Size() * LatAxis.Size() elements the model's axes call for.
// Only the element count is checked; a flat slice carries no orientation,
// so a grid laid out against the row_major flag is not detected.
type ShapeError struct {
	Constituent  string
	Want, Got    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("tidemodel: constituent %s: wave shape mismatch, want %d elements, got %d", e.Constituent, e.Want, e.Got)
}

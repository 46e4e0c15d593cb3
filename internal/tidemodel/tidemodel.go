// Package tidemodel implements the shared, read-only gridded harmonic
// tide model: a longitude x latitude axis pair plus a per-constituent
// complex grid, and the bilinear interpolator with partial-data fallback
// and quality grading that evaluates it at an arbitrary query point.
package tidemodel

import (
	"math"

	"github.com/ngs-io/perth-tides/internal/axis"
	"github.com/ngs-io/perth-tides/internal/constituent"
)

// Quality summarizes how many of the four grid corners contributed to a
// bilinear interpolation at a query point.
type Quality int8

const (
	Undefined     Quality = 0
	Extrapolated1 Quality = 1
	Extrapolated2 Quality = 2
	Extrapolated3 Quality = 3
	Interpolated  Quality = 4
)

func qualityFromCount(n int) Quality {
	return Quality(n)
}

// Model is the shared, read-only gridded tidal model: a longitude axis,
// a latitude axis, and a complex grid per populated constituent.
type Model struct {
	LonAxis  *axis.Axis
	LatAxis  *axis.Axis
	RowMajor bool

	grids map[constituent.Ordinal]complexGrid
}

// New constructs an empty Model over the given axes. rowMajor declares
// whether a constituent's flattened grid iterates longitude as the outer
// (row) dimension.
func New(lonAxis, latAxis *axis.Axis, rowMajor bool) *Model {
	return &Model{
		LonAxis:  lonAxis,
		LatAxis:  latAxis,
		RowMajor: rowMajor,
		grids:    make(map[constituent.Ordinal]complexGrid),
	}
}

// AddConstituent stores a constituent's grid, narrowed to f32 if
// f32Precision is true. values must have exactly LonAxis.Size() *
// LatAxis.Size() elements, laid out according to the model's row_major
// flag (row-major: longitude varies fastest within a latitude row when
// RowMajor is false, and vice versa — see cellIndex).
func (m *Model) AddConstituent(ord constituent.Ordinal, values []complex128, f32Precision bool) error {
	want := m.LonAxis.Size() * m.LatAxis.Size()
	if len(values) != want {
		return &ShapeError{Constituent: constituent.NameOf(ord), Want: want, Got: len(values)}
	}
	if f32Precision {
		m.grids[ord] = NewFloat32Grid(values)
	} else {
		m.grids[ord] = NewFloat64Grid(values)
	}
	return nil
}

// Has reports whether the model has a grid for the given constituent.
func (m *Model) Has(ord constituent.Ordinal) bool {
	_, ok := m.grids[ord]
	return ok
}

// Provided returns the ordinals of every constituent the model has data
// for.
func (m *Model) Provided() []constituent.Ordinal {
	out := make([]constituent.Ordinal, 0, len(m.grids))
	for ord := range m.grids {
		out = append(out, ord)
	}
	return out
}

// cellIndex maps a (lonIndex, latIndex) pair to a flat grid offset,
// honoring the model's row_major orientation.
func (m *Model) cellIndex(lonIdx, latIdx int) int {
	if m.RowMajor {
		return lonIdx*m.LatAxis.Size() + latIdx
	}
	return latIdx*m.LonAxis.Size() + lonIdx
}

func (m *Model) cornerValue(ord constituent.Ordinal, lonIdx, latIdx int) complex128 {
	g, ok := m.grids[ord]
	if !ok {
		return cmplxNaN()
	}
	idx := m.cellIndex(lonIdx, latIdx)
	if idx < 0 || idx >= g.len() {
		return cmplxNaN()
	}
	return g.at(idx)
}

func cmplxNaN() complex128 {
	return complex(math.NaN(), math.NaN())
}

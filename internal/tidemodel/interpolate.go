package tidemodel

import (
	"math"

	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/mathutil"
)

func cmplxIsNaN(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z))
}

// Cell identifies the four grid corners framing a query point, used as
// the Accelerator's spatial cache key.
type Cell struct {
	I1, I2 int // longitude indices
	J1, J2 int // latitude indices
}

// Interpolate evaluates every constituent the model actually carries a
// grid for at (lon, lat), writing interpolated harmonic values into
// table and returning the overall quality code. Constituents the model
// has no grid for are left untouched in table (callers mark them missing
// for the inference stage; see perth.Evaluator.markMissing). If the query
// point falls outside the grid (axis lookup fails on either axis), every
// provided constituent's slot is set to NaN and quality is Undefined. If
// any provided constituent's partial-bilinear result is NaN, the whole
// point aborts: every provided constituent becomes NaN and quality is
// Undefined, per the shared-corner-validity assumption in the model
// contract.
func (m *Model) Interpolate(lon, lat float64, table *constituent.Table) (Cell, Quality) {
	i1, i2, ok1 := m.LonAxis.FindIndices(lon)
	j1, j2, ok2 := m.LatAxis.FindIndices(lat)
	if !ok1 || !ok2 {
		fillNaN(m, table)
		return Cell{}, Undefined
	}
	cell := Cell{I1: i1, I2: i2, J1: j1, J2: j2}

	x1, _ := m.LonAxis.Value(i1)
	x2raw, _ := m.LonAxis.Value(i2)
	y1, _ := m.LatAxis.Value(j1)
	y2, _ := m.LatAxis.Value(j2)

	nlon := m.LonAxis.Normalize(lon)
	x2 := x2raw
	if m.LonAxis.IsPeriodic() {
		// Canonicalize x2 relative to x1 so wraparound cells (e.g. the
		// seam between index size-1 and 0) present as an ascending
		// interval to the weight computation.
		for x2 <= x1 {
			x2 += 360
		}
		for nlon < x1 {
			nlon += 360
		}
	}

	w00, w10, w01, w11 := mathutil.BilinearWeights(nlon, x1, x2, lat, y1, y2)

	quality := Quality(-1)
	aborted := false

	for _, o := range m.Provided() {
		v00 := m.cornerValue(o, i1, j1)
		v10 := m.cornerValue(o, i2, j1)
		v01 := m.cornerValue(o, i1, j2)
		v11 := m.cornerValue(o, i2, j2)

		result, n := mathutil.PartialBilinearComplex(w00, w10, w01, w11, v00, v10, v01, v11)
		if cmplxIsNaN(result) {
			aborted = true
		}
		quality = qualityFromCount(n)
		table.SetProvided(o, result)
	}

	if aborted {
		fillNaN(m, table)
		return cell, Undefined
	}
	return cell, quality
}

// fillNaN marks every constituent the model provides as NaN, e.g. when a
// query point falls outside the grid or a provided constituent's corners
// don't support interpolation.
func fillNaN(m *Model, table *constituent.Table) {
	nan := cmplxNaN()
	for _, o := range m.Provided() {
		table.SetProvided(o, nan)
	}
}

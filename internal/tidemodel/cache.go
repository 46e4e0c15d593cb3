package tidemodel

import (
	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/mathutil"
)

// cellCorners holds the four raw (possibly NaN) grid values for one
// constituent at a cached cell.
type cellCorners struct {
	v00, v10, v01, v11 complex128
}

// Cache is the per-evaluation-thread spatial cache: the last grid cell
// looked up, and the raw corner values fetched for it, so that repeated
// queries landing in the same cell (common for spatially coherent
// batches) skip the grid corner lookups. It is the spatial half of the
// Accelerator described in the evaluation driver.
type Cache struct {
	valid   bool
	cell    Cell
	corners map[constituent.Ordinal]cellCorners
}

// NewCache builds an empty per-thread spatial cache.
func NewCache() *Cache {
	return &Cache{corners: make(map[constituent.Ordinal]cellCorners)}
}

// InterpolateCached is Interpolate, but reuses the raw corner values from
// cache when the query lands in the same grid cell as the previous call.
func (m *Model) InterpolateCached(lon, lat float64, table *constituent.Table, cache *Cache) (Cell, Quality) {
	i1, i2, ok1 := m.LonAxis.FindIndices(lon)
	j1, j2, ok2 := m.LatAxis.FindIndices(lat)
	if !ok1 || !ok2 {
		fillNaN(m, table)
		cache.valid = false
		return Cell{}, Undefined
	}
	cell := Cell{I1: i1, I2: i2, J1: j1, J2: j2}

	if !cache.valid || cache.cell != cell {
		cache.cell = cell
		cache.valid = true
		for _, o := range m.Provided() {
			cache.corners[o] = cellCorners{
				v00: m.cornerValue(o, i1, j1),
				v10: m.cornerValue(o, i2, j1),
				v01: m.cornerValue(o, i1, j2),
				v11: m.cornerValue(o, i2, j2),
			}
		}
	}

	x1, _ := m.LonAxis.Value(i1)
	x2raw, _ := m.LonAxis.Value(i2)
	y1, _ := m.LatAxis.Value(j1)
	y2, _ := m.LatAxis.Value(j2)

	nlon := m.LonAxis.Normalize(lon)
	x2 := x2raw
	if m.LonAxis.IsPeriodic() {
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
		c := cache.corners[o]
		result, n := mathutil.PartialBilinearComplex(w00, w10, w01, w11, c.v00, c.v10, c.v01, c.v11)
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

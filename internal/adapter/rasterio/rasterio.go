// Package rasterio loads small geographic windows out of large
// real-valued NetCDF rasters (EGM2008 geoid height, GEBCO bathymetric
// depth, DTU mean sea surface) and serves point queries against them
// through the same axis and bilinear-weight primitives the tidal
// constituent grids use (internal/axis, internal/mathutil), rather than
// a standalone grid/interpolation type duplicated per vertical-datum
// source.
package rasterio

import (
	"fmt"
	"math"
	"sort"

	"github.com/fhs/go-netcdf/netcdf"

	"github.com/ngs-io/perth-tides/internal/axis"
	"github.com/ngs-io/perth-tides/internal/mathutil"
)

// Grid is an axis-addressed window of a real-valued raster: a subset
// loaded around a query location rather than the whole source file.
type Grid struct {
	LonAxis *axis.Axis
	LatAxis *axis.Axis
	lonWrap bool // source longitude runs [0, 360) rather than [-180, 180)
	values  []float64
}

func (g *Grid) at(i, j int) float64 {
	return g.values[j*g.LonAxis.Size()+i]
}

// Contains reports whether (lat, lon) falls inside the loaded window,
// normalizing lon the same way Sample and the original subset window
// selection do when the source raster uses 0..360 longitude.
func (g *Grid) Contains(lat, lon float64) bool {
	if g == nil {
		return false
	}
	ql := lon
	if g.lonWrap {
		ql = normalizeLon360(ql)
	}
	minLon, maxLon := g.LonAxis.MinValue(), g.LonAxis.MinValue()+math.Abs(g.LonAxis.Step())*float64(g.LonAxis.Size()-1)
	minLat := g.LatAxis.MinValue()
	maxLat := minLat + math.Abs(g.LatAxis.Step())*float64(g.LatAxis.Size()-1)
	return lat >= minLat && lat <= maxLat && ql >= minLon && ql <= maxLon
}

// Sample bilinearly interpolates the grid at (lon, lat). n reports how
// many of the four surrounding corners carried finite data; callers that
// want land-mask-aware behavior can treat n < 4 as reduced confidence,
// mirroring tidemodel's quality grading for the complex tidal grids.
func (g *Grid) Sample(lon, lat float64) (value float64, n int, err error) {
	ql := lon
	if g.lonWrap {
		ql = normalizeLon360(ql)
	}
	i1, i2, ok1 := framingIndices(g.LonAxis, ql)
	j1, j2, ok2 := framingIndices(g.LatAxis, lat)
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("rasterio: (%.6f, %.6f) outside loaded grid window", lon, lat)
	}

	x1, _ := g.LonAxis.Value(i1)
	x2, _ := g.LonAxis.Value(i2)
	y1, _ := g.LatAxis.Value(j1)
	y2, _ := g.LatAxis.Value(j2)

	w00, w10, w01, w11 := mathutil.BilinearWeights(ql, x1, x2, lat, y1, y2)
	v00, v10 := g.at(i1, j1), g.at(i2, j1)
	v01, v11 := g.at(i1, j2), g.at(i2, j2)

	result, count := mathutil.PartialBilinearReal(w00, w10, w01, w11, v00, v10, v01, v11)
	if count == 0 {
		return 0, 0, fmt.Errorf("rasterio: no finite data at (%.6f, %.6f)", lon, lat)
	}
	return result, count, nil
}

// framingIndices frames x between two axis nodes, tolerating an exact
// hit on the axis's first node. axis.FindIndices declines that case (no
// previous node to pair with), which is right for the periodic,
// land-masked tidal grids it was built for, but a raster window loaded
// exactly up to a dataset's true edge (e.g. a target longitude that
// happens to equal the first loaded column) should still resolve to its
// nearest cell rather than fail the whole lookup. Genuinely out-of-window
// queries still return ok=false.
func framingIndices(a *axis.Axis, x float64) (i0, i1 int, ok bool) {
	if lo, hi, found := a.FindIndices(x); found {
		return lo, hi, true
	}
	nx := a.Normalize(x)
	low := a.MinValue()
	high := low + math.Abs(a.Step())*float64(a.Size()-1)
	if nx < low-1e-9 || nx > high+1e-9 {
		return 0, 0, false
	}
	hi := 1
	if a.Size() < 2 {
		hi = 0
	}
	return 0, hi, true
}

// LoadSubset opens path and reads a rectangular window of one 2-D data
// variable wide enough to cover (targetLat, targetLon) +- margin degrees.
// latNames/lonNames/dataNames are tried in order against the file's
// variables, the same multi-candidate-name convention fesgrid.go uses for
// per-constituent grids. [lat, lon] and [lon, lat] dimension orderings are
// both accepted.
func LoadSubset(path string, latNames, lonNames, dataNames []string, targetLat, targetLon, margin float64) (*Grid, error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("rasterio: open %s: %w", path, err)
	}
	defer func() { _ = nc.Close() }()

	latData, err := readNamedVar1D(nc, latNames)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: %w", path, err)
	}
	lonData, err := readNamedVar1D(nc, lonNames)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: %w", path, err)
	}

	wrap := lonAxisWraps360(lonData)
	adjTargetLon := targetLon
	if wrap {
		adjTargetLon = normalizeLon360(targetLon)
	}

	latStart, latEnd := subsetRange(latData, targetLat, targetLat-margin, targetLat+margin)
	lonStart, lonEnd := subsetRange(lonData, adjTargetLon, adjTargetLon-margin, adjTargetLon+margin)
	subsetLat := latData[latStart:latEnd]
	subsetLon := lonData[lonStart:lonEnd]

	dataVar, err := findNamedVar(nc, dataNames)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: %w", path, err)
	}
	values, err := readOrientedSubset(dataVar, len(latData), len(lonData), latStart, lonStart, len(subsetLat), len(subsetLon))
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: %w", path, err)
	}

	lonAxis, err := axis.NewFromPoints(subsetLon, false, 0)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: longitude axis: %w", path, err)
	}
	latAxis, err := axis.NewFromPoints(subsetLat, false, 0)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: latitude axis: %w", path, err)
	}

	flat := make([]float64, 0, len(subsetLat)*len(subsetLon))
	for _, row := range values {
		flat = append(flat, row...)
	}

	return &Grid{LonAxis: lonAxis, LatAxis: latAxis, lonWrap: wrap, values: flat}, nil
}

// readNamedVar1D reads the first name in names that resolves to a 1-D
// variable, the same lookup idiom fesgrid.readAxisVar uses for
// constituent grid axes.
func readNamedVar1D(nc netcdf.Dataset, names []string) ([]float64, error) {
	for _, name := range names {
		v, err := nc.Var(name)
		if err != nil {
			continue
		}
		dims, err := v.Dims()
		if err != nil || len(dims) != 1 {
			continue
		}
		n, err := dims[0].Len()
		if err != nil {
			continue
		}
		out := make([]float64, n)
		if err := v.ReadFloat64s(out); err != nil {
			continue
		}
		return out, nil
	}
	return nil, fmt.Errorf("none of %v found as a 1-D coordinate variable", names)
}

func findNamedVar(nc netcdf.Dataset, names []string) (netcdf.Var, error) {
	for _, name := range names {
		if v, err := nc.Var(name); err == nil {
			return v, nil
		}
	}
	return netcdf.Var{}, fmt.Errorf("none of %v found", names)
}

// subsetRange returns the [start, end) index range of vals nearest to
// [lo, hi], widened by one index on each side so that target (normally
// the exact query coordinate, inside [lo, hi]) keeps a real neighbor on
// both sides rather than landing on the subset's own edge, clamped to
// vals' bounds. vals may be ascending or descending.
func subsetRange(vals []float64, target, lo, hi float64) (start, end int) {
	i0 := nearestIndex(vals, lo)
	i1 := nearestIndex(vals, hi)
	if i0 > i1 {
		i0, i1 = i1, i0
	}
	it := nearestIndex(vals, target)
	if it < i0 {
		i0 = it
	}
	if it > i1 {
		i1 = it
	}
	start = clampInt(i0-1, 0, len(vals)-2)
	end = clampInt(i1+2, start+2, len(vals))
	return start, end
}

// nearestIndex returns the index of the value in vals closest to
// target. vals must be monotonic (ascending or descending); the source
// coordinate arrays of geoid/bathymetry rasters commonly run north to
// south (descending latitude), unlike the ascending axes tidemodel
// works with, so this does not assume a direction the way a plain
// ascending binary search would.
func nearestIndex(vals []float64, target float64) int {
	n := len(vals)
	if n == 0 {
		return 0
	}
	ascending := n < 2 || vals[1] >= vals[0]
	idx := sort.Search(n, func(i int) bool {
		if ascending {
			return vals[i] >= target
		}
		return vals[i] <= target
	})
	if idx == 0 {
		return 0
	}
	if idx == n {
		return n - 1
	}
	if math.Abs(vals[idx-1]-target) <= math.Abs(vals[idx]-target) {
		return idx - 1
	}
	return idx
}

func clampInt(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

func lonAxisWraps360(lons []float64) bool {
	if len(lons) == 0 {
		return false
	}
	minVal, maxVal := lons[0], lons[len(lons)-1]
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}
	return minVal >= 0 && maxVal > 180
}

func normalizeLon360(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// readOrientedSubset reads a [nSubsetLat, nSubsetLon] hyperslab from v
// starting at (latStart, lonStart), detecting whether v's two dimensions
// are ordered [lat, lon] or [lon, lat] against the full coordinate
// lengths and transposing in the latter case. The result is always
// indexed values[latIdx][lonIdx].
func readOrientedSubset(v netcdf.Var, nLat, nLon, latStart, lonStart, nSubsetLat, nSubsetLon int) ([][]float64, error) {
	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions: %w", err)
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("expected 2D data, got %dD", len(dims))
	}
	dim0Len, err := dims[0].Len()
	if err != nil {
		return nil, fmt.Errorf("failed to get dim0 length: %w", err)
	}
	dim1Len, err := dims[1].Len()
	if err != nil {
		return nil, fmt.Errorf("failed to get dim1 length: %w", err)
	}

	switch {
	case dim0Len == uint64(nLat) && dim1Len == uint64(nLon):
		return readFloat64Hyperslab(v, latStart, lonStart, nSubsetLat, nSubsetLon)
	case dim0Len == uint64(nLon) && dim1Len == uint64(nLat):
		transposed, err := readFloat64Hyperslab(v, lonStart, latStart, nSubsetLon, nSubsetLat)
		if err != nil {
			return nil, err
		}
		return transpose2D(transposed), nil
	default:
		return nil, fmt.Errorf("dimension mismatch: data is [%d, %d], expected [%d, %d] or [%d, %d]",
			dim0Len, dim1Len, nLat, nLon, nLon, nLat)
	}
}

// readFloat64Hyperslab reads a [nRows, nCols] hyperslab starting at
// (startRow, startCol), widening DOUBLE/FLOAT/SHORT/INT storage to
// float64 and applying a scale_factor attribute if present. Geoid,
// GEBCO, and MSS products are commonly distributed as scaled int16 to
// keep file size down, so this dispatch is load-bearing, not
// speculative generality.
func readFloat64Hyperslab(v netcdf.Var, startRow, startCol, nRows, nCols int) ([][]float64, error) {
	varType, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("failed to get variable type: %w", err)
	}

	totalSize := nRows * nCols
	start := []uint64{uint64(startRow), uint64(startCol)}
	count := []uint64{uint64(nRows), uint64(nCols)}

	var flatData []float64
	switch varType {
	case netcdf.DOUBLE:
		flatData = make([]float64, totalSize)
		if err := v.ReadFloat64Slice(flatData, start, count); err != nil {
			return nil, fmt.Errorf("failed to read float64 subset: %w", err)
		}
	case netcdf.FLOAT:
		raw := make([]float32, totalSize)
		if err := v.ReadFloat32Slice(raw, start, count); err != nil {
			return nil, fmt.Errorf("failed to read float32 subset: %w", err)
		}
		flatData = make([]float64, totalSize)
		for i, val := range raw {
			flatData[i] = float64(val)
		}
	case netcdf.SHORT:
		raw := make([]int16, totalSize)
		if err := v.ReadInt16Slice(raw, start, count); err != nil {
			return nil, fmt.Errorf("failed to read int16 subset: %w", err)
		}
		flatData = make([]float64, totalSize)
		for i, val := range raw {
			flatData[i] = float64(val)
		}
	case netcdf.INT:
		raw := make([]int32, totalSize)
		if err := v.ReadInt32Slice(raw, start, count); err != nil {
			return nil, fmt.Errorf("failed to read int32 subset: %w", err)
		}
		flatData = make([]float64, totalSize)
		for i, val := range raw {
			flatData[i] = float64(val)
		}
	default:
		return nil, fmt.Errorf("unsupported data type: %v (expected DOUBLE, FLOAT, INT, or SHORT)", varType)
	}

	if scale, ok := readScaleFactor(v); ok && scale != 0 {
		for i := range flatData {
			flatData[i] *= scale
		}
	}

	values := make([][]float64, nRows)
	for i := 0; i < nRows; i++ {
		values[i] = flatData[i*nCols : (i+1)*nCols]
	}
	return values, nil
}

func readScaleFactor(v netcdf.Var) (float64, bool) {
	attr := v.Attr("scale_factor")
	n, err := attr.Len()
	if err != nil || n == 0 {
		return 0, false
	}
	if data := make([]float64, 1); attr.ReadFloat64s(data) == nil {
		return data[0], true
	}
	if data := make([]int32, 1); attr.ReadInt32s(data) == nil {
		return float64(data[0]), true
	}
	return 0, false
}

func transpose2D(data [][]float64) [][]float64 {
	if len(data) == 0 {
		return data
	}
	nRows, nCols := len(data), len(data[0])
	out := make([][]float64, nCols)
	for i := 0; i < nCols; i++ {
		out[i] = make([]float64, nRows)
		for j := 0; j < nRows; j++ {
			out[i][j] = data[j][i]
		}
	}
	return out
}

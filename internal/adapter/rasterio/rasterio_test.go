package rasterio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/fhs/go-netcdf/netcdf"
)

func createTestGrid(t *testing.T, path string, latVals, lonVals []float64, values [][]float64) {
	t.Helper()
	//nolint:gosec // G301: Standard test directory permissions.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := netcdf.CreateFile(path, netcdf.CLOBBER)
	if err != nil {
		t.Fatalf("create nc: %v", err)
	}
	defer func() { _ = f.Close() }()

	latDim, _ := f.AddDim("lat", uint64(len(latVals)))
	lonDim, _ := f.AddDim("lon", uint64(len(lonVals)))
	vlat, _ := f.AddVar("lat", netcdf.DOUBLE, []netcdf.Dim{latDim})
	vlon, _ := f.AddVar("lon", netcdf.DOUBLE, []netcdf.Dim{lonDim})
	vdata, _ := f.AddVar("z", netcdf.DOUBLE, []netcdf.Dim{latDim, lonDim})

	if err := f.EndDef(); err != nil {
		t.Fatalf("enddef: %v", err)
	}
	if err := vlat.WriteFloat64s(latVals); err != nil {
		t.Fatalf("write lat: %v", err)
	}
	if err := vlon.WriteFloat64s(lonVals); err != nil {
		t.Fatalf("write lon: %v", err)
	}
	flat := make([]float64, 0, len(latVals)*len(lonVals))
	for _, row := range values {
		flat = append(flat, row...)
	}
	if err := vdata.WriteFloat64s(flat); err != nil {
		t.Fatalf("write data: %v", err)
	}
}

func TestLoadSubsetInterpolatesWithinWindow(t *testing.T) {
	latVals := []float64{0, 1, 2, 3, 4}
	lonVals := []float64{0, 1, 2, 3, 4}
	values := make([][]float64, len(latVals))
	for i := range values {
		values[i] = make([]float64, len(lonVals))
		for j := range values[i] {
			values[i][j] = float64(i + j) // f(lat, lon) = lat + lon, exactly bilinear
		}
	}
	path := filepath.Join(t.TempDir(), "grid.nc")
	createTestGrid(t, path, latVals, lonVals, values)

	grid, err := LoadSubset(path, []string{"lat"}, []string{"lon"}, []string{"z"}, 2.0, 2.0, 2.0)
	if err != nil {
		t.Fatalf("LoadSubset: %v", err)
	}

	got, n, err := grid.Sample(2.5, 1.5)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 corners, got %d", n)
	}
	want := 1.5 + 2.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Sample(2.5, 1.5) = %v, want %v", got, want)
	}
}

func TestLoadSubsetTransposesLonLatOrder(t *testing.T) {
	latVals := []float64{10, 11, 12}
	lonVals := []float64{100, 101, 102, 103}
	// Stored [lon, lat] instead of [lat, lon].
	transposed := make([][]float64, len(lonVals))
	for i := range transposed {
		transposed[i] = make([]float64, len(latVals))
		for j := range transposed[i] {
			transposed[i][j] = float64(i*10 + j)
		}
	}
	path := filepath.Join(t.TempDir(), "grid_lonlat.nc")

	//nolint:gosec // G301: Standard test directory permissions.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := netcdf.CreateFile(path, netcdf.CLOBBER)
	if err != nil {
		t.Fatalf("create nc: %v", err)
	}
	latDim, _ := f.AddDim("lat", uint64(len(latVals)))
	lonDim, _ := f.AddDim("lon", uint64(len(lonVals)))
	vlat, _ := f.AddVar("lat", netcdf.DOUBLE, []netcdf.Dim{latDim})
	vlon, _ := f.AddVar("lon", netcdf.DOUBLE, []netcdf.Dim{lonDim})
	vdata, _ := f.AddVar("z", netcdf.DOUBLE, []netcdf.Dim{lonDim, latDim})
	if err := f.EndDef(); err != nil {
		t.Fatalf("enddef: %v", err)
	}
	_ = vlat.WriteFloat64s(latVals)
	_ = vlon.WriteFloat64s(lonVals)
	flat := make([]float64, 0, len(latVals)*len(lonVals))
	for _, row := range transposed {
		flat = append(flat, row...)
	}
	if err := vdata.WriteFloat64s(flat); err != nil {
		t.Fatalf("write data: %v", err)
	}
	_ = f.Close()

	grid, err := LoadSubset(path, []string{"lat"}, []string{"lon"}, []string{"z"}, 11.0, 101.0, 2.0)
	if err != nil {
		t.Fatalf("LoadSubset: %v", err)
	}
	got, _, err := grid.Sample(101.0, 11.0)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if math.Abs(got-11.0) > 1e-9 {
		t.Errorf("Sample(101, 11) = %v, want 11 (lonIdx=1, latIdx=1 -> 1*10+1)", got)
	}
}

func TestGridContainsTracksLoadedWindow(t *testing.T) {
	latVals := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	lonVals := []float64{0, 1, 2, 3}
	values := make([][]float64, len(latVals))
	for i := range values {
		values[i] = make([]float64, len(lonVals))
	}
	path := filepath.Join(t.TempDir(), "grid.nc")
	createTestGrid(t, path, latVals, lonVals, values)

	grid, err := LoadSubset(path, []string{"lat"}, []string{"lon"}, []string{"z"}, 1.0, 1.0, 2.0)
	if err != nil {
		t.Fatalf("LoadSubset: %v", err)
	}
	if !grid.Contains(1.0, 1.0) {
		t.Errorf("expected loaded window to contain its own target point")
	}
	if grid.Contains(8.0, 1.0) {
		t.Errorf("expected loaded window to exclude a point far outside the margin")
	}
}

func TestSampleExactHitOnFirstNodeClampsInsteadOfFailing(t *testing.T) {
	latVals := []float64{30, 31, 32}
	lonVals := []float64{230, 231, 232, 233}
	values := [][]float64{
		{-100, -101, -102, -103},
		{-110, -111, -112, -113},
		{-120, -121, -122, -123},
	}
	path := filepath.Join(t.TempDir(), "wrap.nc")
	createTestGrid(t, path, latVals, lonVals, values)

	grid, err := LoadSubset(path, []string{"lat"}, []string{"lon"}, []string{"z"}, 31.0, -130.0, 2.0)
	if err != nil {
		t.Fatalf("LoadSubset: %v", err)
	}
	if _, _, err := grid.Sample(-130.0, 31.0); err != nil {
		t.Fatalf("Sample at exact first-node longitude should clamp, got error: %v", err)
	}
}

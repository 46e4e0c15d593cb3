// Package fesgrid loads FES-style per-constituent NetCDF grids into a
// tidemodel.Model, so that a gridded harmonic tide model can be served
// straight from amplitude/phase (or real/imaginary) pairs on disk rather
// than built in memory by a test.
package fesgrid

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fhs/go-netcdf/netcdf"

	"github.com/ngs-io/perth-tides/internal/axis"
	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/tidemodel"
)

// Loader discovers and loads constituent grid files under a data
// directory into a tidemodel.Model. One Loader is built per model; it is
// not safe to reuse concurrently across distinct models.
type Loader struct {
	dataDir     string
	f32Precision bool

	mu     sync.Mutex
	loaded map[string]bool
}

// NewLoader builds a Loader rooted at dataDir. f32Precision controls the
// storage precision of every constituent grid it adds to a model.
func NewLoader(dataDir string, f32Precision bool) *Loader {
	return &Loader{dataDir: dataDir, f32Precision: f32Precision, loaded: make(map[string]bool)}
}

// AvailableConstituents lists the canonical constituent names with a
// matching NetCDF file under dataDir, recursively.
func (l *Loader) AvailableConstituents() ([]string, error) {
	if _, err := os.Stat(l.dataDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("fesgrid: data directory does not exist: %s", l.dataDir)
	}

	found := make(map[string]bool)
	err := filepath.WalkDir(l.dataDir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".nc") {
			return nil
		}
		base := strings.TrimSuffix(d.Name(), ".nc")
		for _, suffix := range []string{"_amplitude", "_amp", "_phase", "_pha", "_real", "_re", "_imag", "_im"} {
			base = strings.TrimSuffix(base, suffix)
		}
		if entry, _, err := constituent.LookupFold(base); err == nil {
			found[entry.Name] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fesgrid: failed to walk data directory: %w", err)
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	return names, nil
}

// LoadAll discovers every available constituent under dataDir and adds
// each to model. Constituents the model's axes cannot accommodate (wrong
// grid shape) are reported via the returned error, aggregated across all
// failures rather than stopping at the first.
func (l *Loader) LoadAll(model *tidemodel.Model) error {
	names, err := l.AvailableConstituents()
	if err != nil {
		return err
	}
	var errs []string
	for _, name := range names {
		if err := l.LoadConstituent(model, name); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("fesgrid: %d constituent(s) failed to load: %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

// LoadConstituent loads one named constituent's grid file(s) and adds it
// to model, resampling is never performed: the grid file's lon/lat axes
// must match model.LonAxis/model.LatAxis exactly (within the axis
// package's default tolerance).
func (l *Loader) LoadConstituent(model *tidemodel.Model, name string) error {
	ord, _, err := constituent.Lookup(name)
	_ = ord
	if err != nil {
		return err
	}

	path, kind, err := l.findFile(name)
	if err != nil {
		return fmt.Errorf("fesgrid: %s: %w", name, err)
	}

	values, lonPts, latPts, err := readComplexGrid(path, kind)
	if err != nil {
		return fmt.Errorf("fesgrid: %s: %w", name, err)
	}

	gotLon, err := axis.NewFromPoints(lonPts, model.LonAxis.IsPeriodic(), 0)
	if err != nil {
		return fmt.Errorf("fesgrid: %s: building longitude axis: %w", name, err)
	}
	gotLat, err := axis.NewFromPoints(latPts, false, 0)
	if err != nil {
		return fmt.Errorf("fesgrid: %s: building latitude axis: %w", name, err)
	}
	if gotLon.Size() != model.LonAxis.Size() || gotLat.Size() != model.LatAxis.Size() {
		return fmt.Errorf("fesgrid: %s: grid shape [%d x %d] does not match model axes [%d x %d]",
			name, gotLon.Size(), gotLat.Size(), model.LonAxis.Size(), model.LatAxis.Size())
	}
	const axisTol = 1e-6
	if math.Abs(gotLon.Start()-model.LonAxis.Start()) > axisTol || math.Abs(gotLon.Step()-model.LonAxis.Step()) > axisTol ||
		math.Abs(gotLat.Start()-model.LatAxis.Start()) > axisTol || math.Abs(gotLat.Step()-model.LatAxis.Step()) > axisTol {
		return fmt.Errorf("fesgrid: %s: grid coordinates do not match model axes", name)
	}

	ordAgain, _, _ := constituent.Lookup(name)
	if err := model.AddConstituent(ordAgain, values, l.f32Precision); err != nil {
		return fmt.Errorf("fesgrid: %s: %w", name, err)
	}

	l.mu.Lock()
	l.loaded[name] = true
	l.mu.Unlock()
	return nil
}

type fileKind int

const (
	kindAmplitudePhase fileKind = iota
	kindComplexPair
)

// findFile locates the on-disk file for a constituent: "{name}.nc" is
// tried first, then "{name}_amplitude.nc", then "{name}_amp.nc". Only the
// one file found is read, so it must itself carry both variables of an
// amplitude/phase or real/imag pair; a separate phase file is not opened.
func (l *Loader) findFile(name string) (string, fileKind, error) {
	lower := strings.ToLower(name)
	candidates := []string{lower + ".nc", lower + "_amplitude.nc", lower + "_amp.nc"}

	for _, candidate := range candidates {
		var match string
		_ = filepath.WalkDir(l.dataDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || match != "" {
				return nil
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), candidate) {
				match = path
			}
			return nil
		})
		if match != "" {
			return match, kindAmplitudePhase, nil
		}
	}
	return "", 0, fmt.Errorf("no grid file found (tried %v)", candidates)
}

// readComplexGrid reads lon/lat axes and a complex grid (row = lat, col =
// lon, flattened lon-major to match tidemodel.Model's RowMajor=true
// convention) from a single NetCDF file, trying amplitude/phase variable
// names first and falling back to real/imaginary pairs.
func readComplexGrid(path string, _ fileKind) (values []complex128, lonPts, latPts []float64, err error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = nc.Close() }()

	latPts, err = readAxisVar(nc, []string{"lat", "latitude", "y"})
	if err != nil {
		return nil, nil, nil, err
	}
	lonPts, err = readAxisVar(nc, []string{"lon", "longitude", "x"})
	if err != nil {
		return nil, nil, nil, err
	}
	nLat, nLon := len(latPts), len(lonPts)

	amp, ampOK := read2DVar(nc, []string{"amplitude", "amp", "HA"}, nLat, nLon)
	pha, phaOK := read2DVar(nc, []string{"phase", "pha", "Hg", "phase_deg"}, nLat, nLon)
	if ampOK && phaOK {
		values = make([]complex128, nLon*nLat)
		for iLat := 0; iLat < nLat; iLat++ {
			for iLon := 0; iLon < nLon; iLon++ {
				a := amp[iLat][iLon]
				p := pha[iLat][iLon] * math.Pi / 180.0
				values[iLon*nLat+iLat] = complex(a*math.Cos(p), -a*math.Sin(p))
			}
		}
		return values, lonPts, latPts, nil
	}

	re, reOK := read2DVar(nc, []string{"real", "Re", "hRe"}, nLat, nLon)
	im, imOK := read2DVar(nc, []string{"imag", "Im", "hIm"}, nLat, nLon)
	if reOK && imOK {
		values = make([]complex128, nLon*nLat)
		for iLat := 0; iLat < nLat; iLat++ {
			for iLon := 0; iLon < nLon; iLon++ {
				values[iLon*nLat+iLat] = complex(re[iLat][iLon], im[iLat][iLon])
			}
		}
		return values, lonPts, latPts, nil
	}

	return nil, nil, nil, fmt.Errorf("no amplitude/phase or real/imag variable pair found in %s", path)
}

func readAxisVar(nc netcdf.Dataset, names []string) ([]float64, error) {
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
	return nil, fmt.Errorf("none of %v found as a 1D axis variable", names)
}

func read2DVar(nc netcdf.Dataset, names []string, nLat, nLon int) ([][]float64, bool) {
	for _, name := range names {
		v, err := nc.Var(name)
		if err != nil {
			continue
		}
		dims, err := v.Dims()
		if err != nil || len(dims) != 2 {
			continue
		}
		d0, _ := dims[0].Len()
		d1, _ := dims[1].Len()

		flat := make([]float64, nLat*nLon)
		if err := v.ReadFloat64s(flat); err != nil {
			continue
		}

		out := make([][]float64, nLat)
		switch {
		case int(d0) == nLat && int(d1) == nLon:
			for i := 0; i < nLat; i++ {
				out[i] = flat[i*nLon : (i+1)*nLon]
			}
		case int(d0) == nLon && int(d1) == nLat:
			for i := 0; i < nLat; i++ {
				out[i] = make([]float64, nLon)
				for j := 0; j < nLon; j++ {
					out[i][j] = flat[j*nLat+i]
				}
			}
		default:
			continue
		}
		return out, true
	}
	return nil, false
}

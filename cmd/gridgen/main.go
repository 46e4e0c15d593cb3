// Command gridgen synthesizes per-constituent amplitude/phase NetCDF
// grids for exercising internal/adapter/fesgrid and the Perth evaluator
// without a real FES2014/2022 data release on disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fhs/go-netcdf/netcdf"

	"github.com/ngs-io/perth-tides/internal/constituent"
)

// regionalGrid defines the geographic bounds and resolution of a
// synthetic grid.
type regionalGrid struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
	Resolution     float64 // degrees
}

func main() {
	names := flag.String("constituents", "M2,S2,N2,K1,O1", "Comma-separated list of constituent names to generate")
	outDir := flag.String("out", "./data/fes", "Output directory for NetCDF files")
	region := flag.String("region", "global", "Region: global, or custom")
	latMin := flag.Float64("lat-min", -90.0, "Minimum latitude (custom region)")
	latMax := flag.Float64("lat-max", 90.0, "Maximum latitude (custom region)")
	lonMin := flag.Float64("lon-min", -180.0, "Minimum longitude (custom region)")
	lonMax := flag.Float64("lon-max", 180.0, "Maximum longitude (custom region)")
	resolution := flag.Float64("resolution", 1.0, "Grid resolution in degrees")
	refLat := flag.Float64("ref-lat", 35.6762, "Reference latitude for the synthetic amphidrome pattern")
	refLon := flag.Float64("ref-lon", 139.6503, "Reference longitude for the synthetic amphidrome pattern")

	flag.Parse()

	var grid regionalGrid
	switch *region {
	case "global":
		grid = regionalGrid{LatMin: -90, LatMax: 90, LonMin: -180, LonMax: 180 - *resolution, Resolution: *resolution}
	case "custom":
		grid = regionalGrid{LatMin: *latMin, LatMax: *latMax, LonMin: *lonMin, LonMax: *lonMax, Resolution: *resolution}
	default:
		log.Fatalf("unknown region: %s (use global or custom)", *region)
	}

	wanted := strings.Split(*names, ",")
	var entries []constituent.Entry
	for _, n := range wanted {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		entry, _, err := constituent.Lookup(n)
		if err != nil {
			log.Fatalf("unknown constituent %q: %v", n, err)
		}
		entries = append(entries, entry)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	log.Printf("generating %d synthetic constituent grid(s) for region %q", len(entries), *region)
	log.Printf("grid: %.1f-%.1fN, %.1f-%.1fE, resolution %.2f deg", grid.LatMin, grid.LatMax, grid.LonMin, grid.LonMax, grid.Resolution)

	for _, entry := range entries {
		path := filepath.Join(*outDir, strings.ToLower(entry.Name)+".nc")
		if err := generateConstituentGrid(path, entry, grid, *refLat, *refLon); err != nil {
			log.Printf("warning: failed to generate grid for %s: %v", entry.Name, err)
			continue
		}
		log.Printf("wrote %s", path)
	}
}

// generateConstituentGrid writes a single combined NetCDF file holding
// lat, lon, amplitude and phase variables for one constituent, with a
// synthetic cotidal pattern: amplitude decaying away from a reference
// point with smooth geographic ripple, phase advancing radially from it
// to mimic a progressive wave circling an amphidromic point.
func generateConstituentGrid(path string, entry constituent.Entry, grid regionalGrid, refLat, refLon float64) error {
	nLat := int(math.Round((grid.LatMax-grid.LatMin)/grid.Resolution)) + 1
	nLon := int(math.Round((grid.LonMax-grid.LonMin)/grid.Resolution)) + 1

	lat := make([]float64, nLat)
	for i := range lat {
		lat[i] = grid.LatMin + float64(i)*grid.Resolution
	}
	lon := make([]float64, nLon)
	for j := range lon {
		lon[j] = grid.LonMin + float64(j)*grid.Resolution
	}

	baseAmplitude := referenceAmplitude(entry)

	amplitude := make([]float64, nLat*nLon)
	phase := make([]float64, nLat*nLon)
	for i := 0; i < nLat; i++ {
		for j := 0; j < nLon; j++ {
			idx := i*nLon + j

			latDist := lat[i] - refLat
			lonDist := lon[j] - refLon
			dist := math.Hypot(latDist, lonDist)

			decay := math.Cos(dist * math.Pi / 90.0)
			if decay < 0.3 {
				decay = 0.3
			}
			ripple := 1.0 +
				0.15*math.Sin(lat[i]*math.Pi/15.0) +
				0.10*math.Cos(lon[j]*math.Pi/20.0)
			amplitude[idx] = baseAmplitude * decay * ripple

			bearing := math.Atan2(lonDist, latDist) * 180.0 / math.Pi
			p := math.Mod(bearing+dist*1.5, 360.0)
			if p < 0 {
				p += 360.0
			}
			phase[idx] = p
		}
	}

	ds, err := netcdf.CreateFile(path, netcdf.CLOBBER|netcdf.NETCDF4)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = ds.Close() }()

	latDim, err := ds.AddDim("lat", uint64(nLat))
	if err != nil {
		return err
	}
	lonDim, err := ds.AddDim("lon", uint64(nLon))
	if err != nil {
		return err
	}

	latVar, err := ds.AddVar("lat", netcdf.DOUBLE, []netcdf.Dim{latDim})
	if err != nil {
		return err
	}
	if err := latVar.WriteFloat64s(lat); err != nil {
		return err
	}

	lonVar, err := ds.AddVar("lon", netcdf.DOUBLE, []netcdf.Dim{lonDim})
	if err != nil {
		return err
	}
	if err := lonVar.WriteFloat64s(lon); err != nil {
		return err
	}

	ampVar, err := ds.AddVar("amplitude", netcdf.DOUBLE, []netcdf.Dim{latDim, lonDim})
	if err != nil {
		return err
	}
	if err := ampVar.WriteFloat64s(amplitude); err != nil {
		return err
	}

	phaVar, err := ds.AddVar("phase", netcdf.DOUBLE, []netcdf.Dim{latDim, lonDim})
	if err != nil {
		return err
	}
	return phaVar.WriteFloat64s(phase)
}

// referenceAmplitude returns a plausible open-ocean equilibrium amplitude
// (meters) for a constituent's species, used as the synthetic grid's peak
// value; real amplitudes vary by orders of magnitude with local bathymetry
// and resonance, which this generator does not attempt to model.
func referenceAmplitude(entry constituent.Entry) float64 {
	switch entry.Name {
	case "M2":
		return 0.9
	case "S2":
		return 0.4
	case "N2":
		return 0.2
	case "K2":
		return 0.12
	case "K1":
		return 0.35
	case "O1":
		return 0.25
	case "P1":
		return 0.12
	case "Q1":
		return 0.05
	case "Mf":
		return 0.04
	case "Mm":
		return 0.02
	default:
		if entry.Type == constituent.LongPeriod {
			return 0.01
		}
		return 0.03
	}
}

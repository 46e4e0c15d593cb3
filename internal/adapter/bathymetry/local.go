// Package bathymetry provides bathymetry data loading from NetCDF files.
package bathymetry

import (
	"fmt"
	"os"
	"sync"

	"github.com/ngs-io/perth-tides/internal/adapter/geoid"
	"github.com/ngs-io/perth-tides/internal/adapter/rasterio"
)

// loadMargin is the half-width, in degrees, of the grid window loaded
// around each new query location, mirroring internal/adapter/geoid's
// window size for the same class of global raster product.
const loadMargin = 2.0

// LocalStore loads bathymetry and MSL data from local NetCDF files.
// These files can be local disk files or GCS FUSE-mounted files.
type LocalStore struct {
	gebcoPath  string // Path to GEBCO NetCDF file (e.g., /mnt/bathymetry/gebco_2024.nc).
	mssPath    string // Path to MSS NetCDF file (e.g., /mnt/bathymetry/dtu21_mss.nc).
	geoidStore *geoid.Store

	// Cached grid windows (loaded on demand, reloaded when a query falls
	// outside the window currently held).
	depthGrid *rasterio.Grid
	mslGrid   *rasterio.Grid
	mu        sync.RWMutex
}

// NewLocalStore creates a new local file-based bathymetry store.
// Paths can point to GCS FUSE-mounted files (e.g., /mnt/bathymetry/data.nc).
func NewLocalStore(gebcoPath, mssPath string, geoidStore *geoid.Store) *LocalStore {
	return &LocalStore{
		gebcoPath:  gebcoPath,
		mssPath:    mssPath,
		geoidStore: geoidStore,
	}
}

// GetMetadata retrieves bathymetry and MSL data for a location.
func (s *LocalStore) GetMetadata(lat, lon float64) (*LocationMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mssPath != "" && (s.mslGrid == nil || !s.mslGrid.Contains(lat, lon)) {
		if err := s.loadMSSGrid(lat, lon); err != nil {
			// MSL is optional - log warning but continue.
			fmt.Fprintf(os.Stderr, "Warning: failed to load MSS grid: %v\n", err)
		}
	}

	if s.gebcoPath != "" && (s.depthGrid == nil || !s.depthGrid.Contains(lat, lon)) {
		if err := s.loadDepthGrid(lat, lon); err != nil {
			// Depth is optional - log warning but continue.
			fmt.Fprintf(os.Stderr, "Warning: failed to load depth grid: %v\n", err)
		}
	}

	if s.mslGrid == nil && s.depthGrid == nil {
		return nil, nil
	}

	metadata := &LocationMetadata{
		MSL:        0.0,
		DatumName:  "EGM2008",
		SourceName: "Local/GCS FUSE",
	}

	if s.mslGrid != nil {
		msl, _, err := s.mslGrid.Sample(lon, lat)
		if err != nil {
			// If interpolation fails (e.g., out of bounds), return nil.
			return nil, nil
		}

		// DTU21 MSS is referenced to WGS84 ellipsoid.
		// Apply geoid correction to convert to orthometric height (local datum).
		// H (orthometric) = h (ellipsoidal) - N (geoid height).
		if s.geoidStore != nil {
			if geoidHeight, err := s.geoidStore.GetGeoidHeight(lat, lon); err == nil {
				msl -= geoidHeight
				metadata.DatumName = "EGM2008 (geoid-corrected)"
			} else {
				fmt.Fprintf(os.Stderr, "Warning: geoid correction failed: %v\n", err)
			}
		}

		metadata.MSL = msl
		metadata.SourceName = "DTU21 MSS"
	}

	if s.depthGrid != nil {
		depth, _, err := s.depthGrid.Sample(lon, lat)
		// If interpolation fails, depth remains nil.
		if err == nil {
			// GEBCO uses negative values for depth below sea level.
			// Convert to positive depth.
			if depth < 0 {
				positiveDepth := -depth
				metadata.DepthM = &positiveDepth
			}
			if metadata.SourceName == "DTU21 MSS" {
				metadata.SourceName = "GEBCO 2025 + DTU21 MSS"
			} else {
				metadata.SourceName = "GEBCO 2025"
			}
		}
	}

	return metadata, nil
}

// loadMSSGrid loads a subset of the MSS NetCDF file around the target
// location. DTU21 uses the "mean_sea_surf_sol2" variable name.
func (s *LocalStore) loadMSSGrid(lat, lon float64) error {
	grid, err := rasterio.LoadSubset(s.mssPath, []string{"lat", "latitude", "y"}, []string{"lon", "longitude", "x"},
		[]string{"mean_sea_surf_sol2", "data", "z"}, lat, lon, loadMargin)
	if err != nil {
		return fmt.Errorf("failed to load MSS grid: %w", err)
	}
	s.mslGrid = grid
	return nil
}

// loadDepthGrid loads a subset of the GEBCO NetCDF file around the target
// location. GEBCO's "elevation" variable is negative below sea level.
func (s *LocalStore) loadDepthGrid(lat, lon float64) error {
	grid, err := rasterio.LoadSubset(s.gebcoPath, []string{"lat", "latitude", "y"}, []string{"lon", "longitude", "x"},
		[]string{"elevation", "data", "z"}, lat, lon, loadMargin)
	if err != nil {
		return fmt.Errorf("failed to load GEBCO grid: %w", err)
	}
	s.depthGrid = grid
	return nil
}

// Close releases resources (no-op for local store).
func (s *LocalStore) Close() error {
	return nil
}

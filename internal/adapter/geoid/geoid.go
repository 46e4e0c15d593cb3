// Package geoid provides access to EGM2008 geoid data for MSL corrections.
package geoid

import (
	"fmt"
	"sync"

	"github.com/ngs-io/perth-tides/internal/adapter/rasterio"
)

var (
	latNames  = []string{"lat", "latitude", "y"}
	lonNames  = []string{"lon", "longitude", "x"}
	dataNames = []string{"geoid", "geoid_height", "N", "height", "z"}
)

// loadMargin is the half-width, in degrees, of the grid window loaded
// around each new query location. EGM2008 is a smooth, globally gridded
// field, so a single window comfortably covers nearby queries without
// reloading.
const loadMargin = 2.0

// Store provides geoid height lookups for coordinate transformations. It
// lazily loads and caches a local window of the EGM2008 grid, reloading
// only when a query falls outside the cached window.
type Store struct {
	geoidPath string // Path to EGM2008 NetCDF file.
	grid      *rasterio.Grid
	mu        sync.RWMutex
}

// NewStore creates a new geoid store.
func NewStore(geoidPath string) *Store {
	return &Store{geoidPath: geoidPath}
}

// GetGeoidHeight returns the EGM2008 geoid height (N) at a given location.
// This is the separation between the WGS84 ellipsoid and the geoid (mean sea level).
// Positive values mean the geoid is above the ellipsoid.
//
// To convert from ellipsoidal height (h) to orthometric height (H):
//
//	H = h - N
func (s *Store) GetGeoidHeight(lat, lon float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid == nil || !s.grid.Contains(lat, lon) {
		grid, err := rasterio.LoadSubset(s.geoidPath, latNames, lonNames, dataNames, lat, lon, loadMargin)
		if err != nil {
			return 0, fmt.Errorf("failed to load geoid grid: %w", err)
		}
		s.grid = grid
	}

	height, _, err := s.grid.Sample(lon, lat)
	if err != nil {
		return 0, fmt.Errorf("failed to interpolate geoid height: %w", err)
	}
	return height, nil
}

// Close releases resources.
func (s *Store) Close() error {
	return nil
}

// Package main provides the Perth tide evaluation HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ngs-io/perth-tides/internal/adapter/bathymetry"
	"github.com/ngs-io/perth-tides/internal/adapter/fesgrid"
	"github.com/ngs-io/perth-tides/internal/adapter/geoid"
	"github.com/ngs-io/perth-tides/internal/axis"
	"github.com/ngs-io/perth-tides/internal/httpapi"
	"github.com/ngs-io/perth-tides/internal/tidemodel"
)

const version = "0.1.0"

func main() {
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}
	if *showVersion {
		fmt.Printf("perthd version %s\n", version)
		return
	}

	port := getEnv("PERTHD_PORT", "8080")
	fesDir := getEnv("PERTHD_GRID_DIR", "./data/fes")
	corsOrigins := getEnv("CORS_ALLOWED_ORIGINS", "")
	gebcoPath := getEnv("BATHYMETRY_GEBCO_PATH", "")
	mssPath := getEnv("BATHYMETRY_MSS_PATH", "")
	geoidPath := getEnv("GEOID_EGM2008_PATH", "")
	f32 := getEnv("PERTHD_GRID_F32_PRECISION", "false") == "true"
	timeTolerance := getEnvFloat("PERTHD_TIME_TOLERANCE_SEC", 1.0)
	lonStep := getEnvFloat("PERTHD_GRID_LON_STEP_DEG", 1.0)
	latStep := getEnvFloat("PERTHD_GRID_LAT_STEP_DEG", 1.0)

	log.Printf("starting Perth tide evaluation server...")
	log.Printf("port: %s", port)
	log.Printf("FES grid directory: %s", fesDir)

	lonAxis, err := axis.NewLinSpaced(-180, 180-lonStep, lonStep, true)
	if err != nil {
		log.Fatalf("failed to build longitude axis: %v", err)
	}
	latAxis, err := axis.NewLinSpaced(-90, 90, latStep, false)
	if err != nil {
		log.Fatalf("failed to build latitude axis: %v", err)
	}
	model := tidemodel.New(lonAxis, latAxis, true)

	loader := fesgrid.NewLoader(fesDir, f32)
	if err := loader.LoadAll(model); err != nil {
		log.Printf("warning: %v", err)
	}
	log.Printf("model populated with %d constituent(s)", len(model.Provided()))

	var geoidStore *geoid.Store
	if geoidPath != "" {
		log.Printf("initializing EGM2008 geoid store: %s", geoidPath)
		geoidStore = geoid.NewStore(geoidPath)
	}

	var bathyStore bathymetry.Store
	if gebcoPath != "" || mssPath != "" {
		log.Printf("initializing bathymetry store (gebco=%q mss=%q)", gebcoPath, mssPath)
		bathyStore = bathymetry.NewLocalStore(gebcoPath, mssPath, geoidStore)
	} else {
		log.Printf("bathymetry store disabled (no data paths configured)")
	}

	router := httpapi.SetupRouter(model, timeTolerance, corsOrigins, bathyStore)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("server listening on %s", addr)
	log.Printf("  - POST /v1/evaluate")
	log.Printf("  - GET  /v1/constituents")
	log.Printf("  - GET  /healthz")

	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("warning: invalid %s=%q, using default %v", key, v, defaultValue)
		return defaultValue
	}
	return f
}

func printUsage() {
	fmt.Printf("Perth Tide Evaluation Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  perthd [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PERTHD_PORT               Server port (default: 8080)")
	fmt.Println("  PERTHD_GRID_DIR           Per-constituent NetCDF grid directory (default: ./data/fes)")
	fmt.Println("  PERTHD_GRID_LON_STEP_DEG  Served model's longitude grid step in degrees (default: 1.0)")
	fmt.Println("  PERTHD_GRID_LAT_STEP_DEG  Served model's latitude grid step in degrees (default: 1.0)")
	fmt.Println("  PERTHD_GRID_F32_PRECISION Store grids as float32 instead of float64 (default: false)")
	fmt.Println("  PERTHD_TIME_TOLERANCE_SEC Accelerator time-reuse tolerance in seconds (default: 1.0)")
	fmt.Println("  CORS_ALLOWED_ORIGINS      Comma-separated list of allowed origins (default: all origins)")
	fmt.Println("  BATHYMETRY_GEBCO_PATH     Path to GEBCO NetCDF file (optional)")
	fmt.Println("  BATHYMETRY_MSS_PATH       Path to MSS NetCDF file (optional)")
	fmt.Println("  GEOID_EGM2008_PATH        Path to EGM2008 geoid NetCDF file (optional, for MSL correction)")
	fmt.Println("  PERTHD_NODAL_COEFFS_PATH  Path to a JSON nodal-correction coefficient override file (optional)")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET  /healthz             Health check")
	fmt.Println("  GET  /v1/constituents     List tidal constituents and grid coverage")
	fmt.Println("  POST /v1/evaluate         Batch-evaluate tide height at (lon, lat, time_mjd) points")
	fmt.Println()
}

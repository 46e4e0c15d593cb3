package httpapi

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ngs-io/perth-tides/internal/adapter/bathymetry"
	"github.com/ngs-io/perth-tides/internal/tidemodel"
)

// SetupRouter builds the Gin engine serving a Model: batch tide
// evaluation, the constituent catalogue, and a health check.
// allowedOrigins, if non-empty, restricts CORS to that comma-separated
// list; empty allows any origin (the pre-deployment default). bathy is
// optional and may be nil.
func SetupRouter(model *tidemodel.Model, timeToleranceSeconds float64, allowedOrigins string, bathy bathymetry.Store) *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware(allowedOrigins))

	handler := NewHandler(model, timeToleranceSeconds, bathy)

	v1 := router.Group("/v1")
	{
		v1.POST("/evaluate", handler.Evaluate)
		v1.GET("/constituents", handler.Constituents)
	}
	router.GET("/healthz", handler.HealthCheck)

	return router
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if allowedOrigins == "" {
		cfg.AllowAllOrigins = true
	} else {
		origins := strings.Split(allowedOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type"}
	return cors.New(cfg)
}

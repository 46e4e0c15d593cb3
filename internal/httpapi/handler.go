// Package httpapi exposes the Perth evaluator over HTTP: a batch
// evaluate endpoint and a constituent catalogue listing, following the
// same Gin handler/router split as the prior HTTP surface this one
// replaces.
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ngs-io/perth-tides/internal/adapter/bathymetry"
	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/inference"
	"github.com/ngs-io/perth-tides/internal/perth"
	"github.com/ngs-io/perth-tides/internal/tidemodel"
)

// Handler serves tide evaluation requests against a shared, read-only
// Model. Every request builds its own Evaluator (table + accelerator) so
// concurrent requests never share mutable scratch state. bathy is
// optional: when nil, evaluate responses omit vertical-datum metadata.
type Handler struct {
	model                *tidemodel.Model
	timeToleranceSeconds float64
	bathy                bathymetry.Store
}

// NewHandler builds a Handler over a populated Model. bathy may be nil.
func NewHandler(model *tidemodel.Model, timeToleranceSeconds float64, bathy bathymetry.Store) *Handler {
	return &Handler{model: model, timeToleranceSeconds: timeToleranceSeconds, bathy: bathy}
}

// evaluateRequest is the POST /v1/evaluate body: parallel lon/lat/time_mjd
// arrays, plus the evaluation options from spec section 4.8.
type evaluateRequest struct {
	Lon              []float64 `json:"lon" binding:"required"`
	Lat              []float64 `json:"lat" binding:"required"`
	TimeMJD          []float64 `json:"time_mjd" binding:"required"`
	Inference        bool      `json:"inference"`
	Interpolation    string    `json:"interpolation"` // "linear" or "fourier"
	GroupModulations bool      `json:"group_modulations"`
}

type evaluateResponse struct {
	Tide     []float64                       `json:"tide"`
	TideLP   []float64                       `json:"tide_lp"`
	Quality  []int8                          `json:"quality"`
	Location []*bathymetry.LocationMetadata `json:"location,omitempty"`
}

// Evaluate handles POST /v1/evaluate.
func (h *Handler) Evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	interp := inference.LinearAdmittance
	if req.Interpolation == "fourier" {
		interp = inference.FourierAdmittance
	}

	opts := perth.Options{
		InferenceEnabled: req.Inference,
		Interpolation:    interp,
		GroupModulations: perth.GroupModulations(req.GroupModulations),
	}
	e := perth.NewEvaluator(h.model, h.timeToleranceSeconds, opts)

	tide, tideLP, quality, err := e.EvaluateBatch(req.Lon, req.Lat, req.TimeMJD)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := evaluateResponse{Tide: tide, TideLP: tideLP, Quality: quality}
	if h.bathy != nil {
		resp.Location = make([]*bathymetry.LocationMetadata, len(req.Lon))
		for i := range req.Lon {
			meta, err := h.bathy.GetMetadata(req.Lat[i], req.Lon[i])
			if err != nil {
				continue
			}
			resp.Location[i] = meta
		}
	}

	c.JSON(http.StatusOK, resp)
}

// constituentInfo is one entry of GET /v1/constituents.
type constituentInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Doodson [7]int8 `json:"doodson"`
	Grid    bool   `json:"grid_provided"`
}

// Constituents handles GET /v1/constituents: the full catalogue, flagging
// which entries the served model actually populates from its grid.
func (h *Handler) Constituents(c *gin.Context) {
	entries := constituent.All()
	out := make([]constituentInfo, len(entries))
	for i, e := range entries {
		out[i] = constituentInfo{
			Name:    e.Name,
			Type:    e.Type.String(),
			Doodson: e.Doodson,
			Grid:    h.model.Has(constituent.Ordinal(i)),
		}
	}
	c.JSON(http.StatusOK, gin.H{"constituents": out, "count": len(out)})
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

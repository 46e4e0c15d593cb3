package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ngs-io/perth-tides/internal/axis"
	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/tidemodel"
)

func buildTestModel(t *testing.T) *tidemodel.Model {
	t.Helper()
	lonAxis, err := axis.NewLinSpaced(-180, 178, 2, true)
	if err != nil {
		t.Fatalf("lon axis: %v", err)
	}
	latAxis, err := axis.NewLinSpaced(-90, 90, 2, false)
	if err != nil {
		t.Fatalf("lat axis: %v", err)
	}
	m := tidemodel.New(lonAxis, latAxis, true)
	n := lonAxis.Size() * latAxis.Size()
	values := make([]complex128, n)
	for i := range values {
		values[i] = complex(1.0, 0.0)
	}
	ord := constituent.MustOrdinal("M2")
	if err := m.AddConstituent(ord, values, false); err != nil {
		t.Fatalf("AddConstituent: %v", err)
	}
	return m
}

func TestEvaluateEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(buildTestModel(t), 0, "", nil)

	body, _ := json.Marshal(evaluateRequest{
		Lon:     []float64{0},
		Lat:     []float64{0},
		TimeMJD: []float64{45335.0},
	})
	req := httptest.NewRequest("POST", "/v1/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp evaluateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Tide) != 1 || len(resp.Quality) != 1 {
		t.Fatalf("unexpected response shape: %+v", resp)
	}
	if resp.Quality[0] != int8(tidemodel.Interpolated) {
		t.Errorf("quality = %d, want Interpolated", resp.Quality[0])
	}
}

func TestConstituentsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(buildTestModel(t), 0, "", nil)

	req := httptest.NewRequest("GET", "/v1/constituents", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestHealthzEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(buildTestModel(t), 0, "", nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
}

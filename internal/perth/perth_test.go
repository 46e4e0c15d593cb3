package perth

import (
	"math"
	"testing"

	"github.com/ngs-io/perth-tides/internal/astro"
	"github.com/ngs-io/perth-tides/internal/axis"
	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/nodal"
	"github.com/ngs-io/perth-tides/internal/tidemodel"
)

func buildGlobalM2Model(t *testing.T) *tidemodel.Model {
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

// TestEvaluatePointM2OnlyGlobalGrid reproduces the end-to-end scenario: a
// model with only M2 populated, constant complex amplitude (1,0)
// everywhere, evaluated at lon=0, lat=0, time=45335 MJD. tide_lp must be
// exactly zero (no long-period constituent is provided or inferred, since
// inference is disabled), and tide must equal
// f_M2 * cos(radians(doodson_arg_M2 + u_M2)).
func TestEvaluatePointM2OnlyGlobalGrid(t *testing.T) {
	model := buildGlobalM2Model(t)
	e := NewEvaluator(model, 0, Options{InferenceEnabled: false})

	result, err := e.EvaluatePoint(0, 0, 45335.0)
	if err != nil {
		t.Fatalf("EvaluatePoint: %v", err)
	}
	if result.Quality != tidemodel.Interpolated {
		t.Fatalf("expected Interpolated quality, got %v", result.Quality)
	}
	if math.Abs(result.TideLP) > 1e-15 {
		t.Errorf("tide_lp = %v, want 0", result.TideLP)
	}

	const timeMJD = 45335.0
	delta, err := astro.CalculateDeltaTime(timeMJD + 2400000.5)
	if err != nil {
		t.Fatalf("CalculateDeltaTime: %v", err)
	}
	vec := astro.CalculateCelestialVector(timeMJD, delta)
	omega := vec[4]
	p := vec[3]

	m2 := constituent.MustOrdinal("M2")
	entry := constituent.EntryAt(m2)
	fac := nodal.Standard("M2", omega, p)
	doodsonArg := astro.CalculateDoodsonArgument(timeMJD, delta, entry.Doodson)

	want := fac.F * math.Cos((doodsonArg+fac.U)*math.Pi/180.0)
	if math.Abs(result.Tide-want) > 1e-10 {
		t.Errorf("tide = %v, want %v (diff %v)", result.Tide, want, result.Tide-want)
	}
}

func TestEvaluatePointUndefinedOutsideGrid(t *testing.T) {
	model := buildGlobalM2Model(t)
	e := NewEvaluator(model, 0, Options{InferenceEnabled: false})

	result, err := e.EvaluatePoint(0, 95, 45335.0)
	if err != nil {
		t.Fatalf("EvaluatePoint: %v", err)
	}
	if result.Quality != tidemodel.Undefined {
		t.Fatalf("expected Undefined, got %v", result.Quality)
	}
	if !math.IsNaN(result.Tide) || !math.IsNaN(result.TideLP) {
		t.Errorf("expected NaN outputs outside grid, got tide=%v tide_lp=%v", result.Tide, result.TideLP)
	}
}

func TestEvaluateBatchSizeMismatch(t *testing.T) {
	model := buildGlobalM2Model(t)
	e := NewEvaluator(model, 0, Options{InferenceEnabled: false})

	_, _, _, err := e.EvaluateBatch([]float64{0, 1}, []float64{0}, []float64{45335, 45335})
	if err == nil {
		t.Fatalf("expected size mismatch error")
	}
}

func TestEvaluateBatchReusesCachesAcrossNearbyPoints(t *testing.T) {
	model := buildGlobalM2Model(t)
	e := NewEvaluator(model, 3600, Options{InferenceEnabled: false})

	lon := []float64{0, 0.1, 0.2}
	lat := []float64{0, 0, 0}
	timeMJD := []float64{45335.0, 45335.0, 45335.0 + 1.0/86400.0}

	tide, tideLP, quality, err := e.EvaluateBatch(lon, lat, timeMJD)
	if err != nil {
		t.Fatalf("EvaluateBatch: %v", err)
	}
	for i := range tide {
		if quality[i] != int8(tidemodel.Interpolated) {
			t.Errorf("point %d: quality = %v, want Interpolated", i, quality[i])
		}
		if tideLP[i] != 0 {
			t.Errorf("point %d: tide_lp = %v, want 0", i, tideLP[i])
		}
	}
	if tide[0] != tide[1] {
		t.Errorf("constant grid should give identical tide at nearby points: %v vs %v", tide[0], tide[1])
	}
}

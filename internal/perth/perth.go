package perth

import (
	"math"

	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/inference"
	"github.com/ngs-io/perth-tides/internal/tidemodel"
)

// Options configures one evaluation call.
type Options struct {
	InferenceEnabled bool
	Interpolation    inference.InterpolationType
	GroupModulations GroupModulations
}

// Evaluator (the "Perth" evaluator) orchestrates per-point grid
// interpolation, optional admittance inference, astronomical argument
// update, and the final harmonic sum, for one worker thread. It owns one
// ConstituentTable and one Accelerator, both mutated on every query; the
// underlying tidemodel.Model is shared, read-only.
type Evaluator struct {
	Model       *tidemodel.Model
	Table       *constituent.Table
	Accelerator *Accelerator
	Options     Options
}

// NewEvaluator builds an Evaluator over a shared model, with its own
// fresh ConstituentTable and Accelerator.
func NewEvaluator(model *tidemodel.Model, timeToleranceSeconds float64, opts Options) *Evaluator {
	return &Evaluator{
		Model:       model,
		Table:       constituent.NewTable(),
		Accelerator: NewAccelerator(timeToleranceSeconds),
		Options:     opts,
	}
}

// Result is the three-part output of one point evaluation.
type Result struct {
	Tide    float64 // meters, short-period sum
	TideLP  float64 // meters, long-period sum
	Quality tidemodel.Quality
}

// EvaluatePoint evaluates the tide at (lon, lat, timeMJD). After
// interpolating, it flags every constituent absent from the model as
// missing, so the inference stage knows which slots to fill.
func (e *Evaluator) EvaluatePoint(lon, lat, timeMJD float64) (Result, error) {
	cell, quality := e.Model.InterpolateCached(lon, lat, e.Table, e.Accelerator.Spatial)
	_ = cell

	if quality == tidemodel.Undefined {
		return Result{Tide: math.NaN(), TideLP: math.NaN(), Quality: quality}, nil
	}

	e.markMissing()

	if e.Options.InferenceEnabled {
		inference.Infer(e.Table, lat, e.Options.Interpolation)
	}

	if err := e.Accelerator.UpdateArgs(timeMJD, e.Options.GroupModulations, e.Table); err != nil {
		return Result{}, err
	}

	var tide, tideLP float64
	for ord := 0; ord < e.Table.Len(); ord++ {
		o := constituent.Ordinal(ord)
		tc := e.Table.At(o)

		fac := e.Accelerator.NodalFactors(o)
		u := fac.U
		arg := e.Accelerator.DoodsonArgument(o)

		x := (arg + u) * math.Pi / 180.0
		h := fac.F * (real(tc.Tide)*math.Cos(x) - imag(tc.Tide)*math.Sin(x))

		if tc.Type == constituent.LongPeriod {
			tideLP += h
		} else {
			tide += h
		}
	}

	return Result{Tide: tide, TideLP: tideLP, Quality: quality}, nil
}

// markMissing flags every constituent the shared model does not provide
// as inferred, so the inference stage (if enabled) knows which slots to
// fill. Provided constituents keep the value Interpolate just wrote.
func (e *Evaluator) markMissing() {
	for ord := 0; ord < e.Table.Len(); ord++ {
		o := constituent.Ordinal(ord)
		if !e.Model.Has(o) {
			e.Table.SetMissing(o)
		}
	}
}

// EvaluateBatch evaluates N points in input order, so the Accelerator's
// spatial and temporal caches hit when consecutive points are nearby.
// Per the concurrency model, callers fan out across multiple Evaluators
// (one per worker thread) for parallel batches; this method itself does
// not spawn goroutines.
func (e *Evaluator) EvaluateBatch(lon, lat, timeMJD []float64) ([]float64, []float64, []int8, error) {
	n := len(lon)
	if len(lat) != n || len(timeMJD) != n {
		return nil, nil, nil, &SizeMismatchError{LonLen: len(lon), LatLen: len(lat), TimeLen: len(timeMJD)}
	}
	tide := make([]float64, n)
	tideLP := make([]float64, n)
	quality := make([]int8, n)
	for i := 0; i < n; i++ {
		r, err := e.EvaluatePoint(lon[i], lat[i], timeMJD[i])
		if err != nil {
			return nil, nil, nil, err
		}
		tide[i] = r.Tide
		tideLP[i] = r.TideLP
		quality[i] = int8(r.Quality)
	}
	return tide, tideLP, quality, nil
}

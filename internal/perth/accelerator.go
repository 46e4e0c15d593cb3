// Package perth implements the evaluation driver: the per-thread
// Accelerator that caches expensive time-dependent astronomical state
// across nearby query points, and the Perth evaluator that orchestrates
// grid interpolation, admittance inference, and the final harmonic sum.
package perth

import (
	"math"

	"github.com/ngs-io/perth-tides/internal/astro"
	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/nodal"
	"github.com/ngs-io/perth-tides/internal/tidemodel"
)

// GroupModulations selects the group-modulated nodal correction variant
// for constituents with a group-specific formula, falling back to the
// standard formula elsewhere.
type GroupModulations bool

const (
	StandardNodal       GroupModulations = false
	GroupModulatedNodal GroupModulations = true
)

// Accelerator is the mutable, per-evaluation-thread scratchpad: the
// spatial grid-cell cache (via its embedded tidemodel.Cache) plus the
// time-dependent astronomical state - current time, Delta-T, nodal
// corrections and Doodson arguments per constituent - refreshed only when
// time moves beyond time_tolerance from the cached value.
type Accelerator struct {
	Spatial *tidemodel.Cache

	nodalTable *nodal.Table

	timeTolerance float64 // seconds
	haveCached    bool
	cachedTimeMJD float64

	delta    float64 // Delta-T, seconds
	nodalFac []nodal.Factors
	doodson  []float64 // per-constituent Doodson argument, degrees
}

// NewAccelerator builds an Accelerator sized to the catalogue
// (constituent.Count()), with the given time-reuse tolerance in seconds.
func NewAccelerator(timeToleranceSeconds float64) *Accelerator {
	n := constituent.Count()
	return &Accelerator{
		Spatial:       tidemodel.NewCache(),
		nodalTable:    nodal.NewTable(),
		timeTolerance: timeToleranceSeconds,
		nodalFac:      make([]nodal.Factors, n),
		doodson:       make([]float64, n),
	}
}

// UpdateArgs refreshes the astronomical state - Delta-T, nodal
// corrections, and per-constituent Doodson arguments - if timeMJD has
// moved beyond the cached time by more than time_tolerance. It is a no-op
// otherwise.
func (a *Accelerator) UpdateArgs(timeMJD float64, groupMod GroupModulations, table *constituent.Table) error {
	if a.haveCached && math.Abs(timeMJD-a.cachedTimeMJD)*86400.0 <= a.timeTolerance {
		return nil
	}

	delta, err := astro.CalculateDeltaTime(timeMJD + 2400000.5)
	if err != nil {
		return err
	}
	a.delta = delta

	vec := astro.CalculateCelestialVector(timeMJD, delta)
	omega := vec[4] // N', the negative lunar node longitude
	p := vec[3]
	hs := vec[2] // h, mean solar longitude
	ps := vec[5]

	for ord := 0; ord < table.Len(); ord++ {
		o := constituent.Ordinal(ord)
		name := constituent.NameOf(o)
		tc := table.At(o)

		var fac nodal.Factors
		if groupMod {
			fac = nodal.GroupModulated(name, omega, p, hs, ps)
		} else {
			fac = a.nodalTable.Factors(name, omega, p)
		}
		a.nodalFac[ord] = fac
		a.doodson[ord] = astro.CalculateDoodsonArgument(timeMJD, delta, tc.Doodson)
	}

	a.cachedTimeMJD = timeMJD
	a.haveCached = true
	return nil
}

// NodalFactors returns the cached nodal factors for a constituent
// ordinal, valid as of the last UpdateArgs call.
func (a *Accelerator) NodalFactors(ord constituent.Ordinal) nodal.Factors {
	return a.nodalFac[ord]
}

// DoodsonArgument returns the cached Doodson argument (degrees) for a
// constituent ordinal, valid as of the last UpdateArgs call.
func (a *Accelerator) DoodsonArgument(ord constituent.Ordinal) float64 {
	return a.doodson[ord]
}

// DeltaT returns the cached Delta-T (seconds), valid as of the last
// UpdateArgs call.
func (a *Accelerator) DeltaT() float64 {
	return a.delta
}

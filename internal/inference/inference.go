// Package inference implements admittance inference: filling in harmonic
// constants for minor ("secondary") tidal constituents from a small set
// of model-provided ("primary") constituents, by interpolating tidal
// admittance across frequency within a species, with Love-number scaling
// in the diurnal band and a latitude-dependent equilibrium substitution
// for the long-period node tide.
package inference

import (
	"math"

	"github.com/ngs-io/perth-tides/internal/astro"
	"github.com/ngs-io/perth-tides/internal/constituent"
	"github.com/ngs-io/perth-tides/internal/love"
)

// equilibriumNodeGamma2 is the gamma2 constant of the degree-2 equilibrium
// long-period tide formula (see EquilibriumNodeTide).
const equilibriumNodeGamma2 = 0.682

// Infer fills in every is_inferred secondary constituent in hc, across
// all three species, using the given interpolation type for the diurnal
// and semidiurnal bands (the long-period band always interpolates
// linearly). latDeg is the query latitude, needed for the equilibrium
// node-tide substitution.
func Infer(hc *constituent.Table, latDeg float64, interp InterpolationType) {
	inferSpecies(hc, Diurnal, interp, latDeg)
	inferSpecies(hc, Semidiurnal, interp, latDeg)
	inferSpecies(hc, LongPeriod, LinearAdmittance, latDeg)
}

func inferSpecies(hc *constituent.Table, sp Species, interp InterpolationType, latDeg float64) {
	tbl := tableFor(sp)

	if sp == LongPeriod {
		substituteNodeTideIfInferred(hc, tbl, latDeg)
	}

	// Primary admittances: tide normalized by amplitude (and, for the
	// diurnal band, by the Love-number potential factor).
	var freqs [3]float64
	var admit [3]complex128
	for i, p := range tbl.primaries {
		tc := hc.At(p.ord)
		freqs[i] = astro.TidalFrequency(doodson6(tc.Doodson))
		tide := tc.Tide
		switch sp {
		case Diurnal:
			n := love.PMM95B(freqs[i])
			tide /= complex(p.amplitude*(1+n.K2-n.H2), 0)
		case Semidiurnal:
			tide /= complex(p.amplitude, 0)
		case LongPeriod:
			tide /= complex(p.amplitude, 0)
		}
		admit[i] = tide
	}

	for _, s := range tbl.secondaries {
		tc := hc.At(s.ord)
		if !tc.IsInferred || tc.Type != typeFor(sp) {
			continue
		}
		x := astro.TidalFrequency(doodson6(tc.Doodson))

		var a complex128
		switch {
		case sp == LongPeriod:
			a = linearAdmittance(freqs[0], freqs[1], freqs[2], admit[0], admit[1], admit[2], x)
		case interp == FourierAdmittance:
			a = fourierAdmittance(freqs[0], freqs[1], freqs[2], admit[0], admit[1], admit[2], x)
		default:
			a = linearAdmittance(freqs[0], freqs[1], freqs[2], admit[0], admit[1], admit[2], x)
		}

		value := a * complex(s.amplitude, 0)
		if sp == Diurnal {
			n := love.PMM95B(x)
			value *= complex(1+n.K2-n.H2, 0)
		}
		tc.Tide = value
	}
}

func typeFor(sp Species) constituent.Type {
	if sp == LongPeriod {
		return constituent.LongPeriod
	}
	return constituent.ShortPeriod
}

func doodson6(d constituent.Doodson7) [6]int8 {
	var out [6]int8
	copy(out[:], d[:6])
	return out
}

// substituteNodeTideIfInferred replaces the Node primary's tide with the
// latitude-dependent equilibrium long-period (18.6-year nodal) tide, used
// as the Node admittance anchor when the gridded model does not provide
// it directly.
func substituteNodeTideIfInferred(hc *constituent.Table, tbl speciesTable, latDeg float64) {
	nodeOrd := tbl.primaries[0].ord
	tc := hc.At(nodeOrd)
	if !tc.IsInferred {
		return
	}
	tc.Tide = EquilibriumNodeTide(latDeg, nodeAmplitude)
}

// EquilibriumNodeTide returns the complex equilibrium node tide at
// latitude latDeg (degrees), scaled by amplitude A (meters): Complex(xi*A,
// 0) where xi = gamma2 * P20(sin(phi)) * sqrt(1.25/pi), P20 is the
// degree-2 zonal Legendre polynomial, and gamma2 is the diurnal-band
// elastic Love reduction factor for the long-period tide.
func EquilibriumNodeTide(latDeg, amplitude float64) complex128 {
	phi := latDeg * math.Pi / 180.0
	sinPhi := math.Sin(phi)
	p20 := 0.5 - 1.5*sinPhi*sinPhi
	xi := equilibriumNodeGamma2 * p20 * math.Sqrt(1.25/math.Pi)
	return complex(xi*amplitude, 0)
}

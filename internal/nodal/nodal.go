// Package nodal computes the nodal modulation factor f and phase
// correction u for each catalogue constituent, in the Doodson/Cartwright/
// Schureman tradition: tabulated cosine/sine series in the lunar node
// longitude Omega (and, for the group-modulated variant, the solar
// longitude and perihelion).
package nodal

import "math"

// Factors is the nodal amplitude factor f and phase correction u
// (degrees) for one constituent at one instant.
type Factors struct {
	F float64
	U float64
}

// identity is returned for any constituent with no tabulated rule.
var identity = Factors{F: 1, U: 0}

// rule evaluates f and u from the lunar node longitude omega (degrees,
// Doodson's negative-node convention N') and lunar perigee p (degrees).
type rule func(omegaDeg, pDeg float64) Factors

// standardRules tabulates the classical per-constituent nodal correction
// formulas. Constituents sharing a species and frequency neighborhood
// (e.g. N2 with M2, Q1 with O1) share a formula, matching common
// practice in harmonic tidal prediction packages.
var standardRules = map[string]rule{
	"M2": cosSeries(1.0004, []float64{-0.0373, 0.0002}, []float64{-2.14}),
	"N2": cosSeries(1.0004, []float64{-0.0373, 0.0002}, []float64{-2.14}),
	"2N2": cosSeries(1.0004, []float64{-0.0373, 0.0002}, []float64{-2.14}),
	"Mu2": cosSeries(1.0004, []float64{-0.0373, 0.0002}, []float64{-2.14}),
	"Nu2": cosSeries(1.0004, []float64{-0.0373, 0.0002}, []float64{-2.14}),
	"Lambda2": cosSeries(1.0004, []float64{-0.0373, 0.0002}, []float64{-2.14}),
	"L2": cosSeries(1.0004, []float64{-0.25, 0.0002}, []float64{-2.14}),
	"S2": constant(1, 0),
	"T2": constant(1, 0),
	"R2": constant(1, 0),
	"K2": cosSeries(1.0246, []float64{0.2863, 0.0083, -0.0015}, []float64{-17.74, 0.68, -0.04}),

	"K1": cosSeries(1.0060, []float64{0.1150, -0.0088, 0.0006}, []float64{-8.86, 0.68, -0.07}),
	"O1": cosSeries(1.0089, []float64{0.1871, -0.0147, 0.0014}, []float64{10.80, -1.34, 0.19}),
	"Q1": cosSeries(1.0089, []float64{0.1871, -0.0147, 0.0014}, []float64{10.80, -1.34, 0.19}),
	"2Q1": cosSeries(1.0089, []float64{0.1871, -0.0147, 0.0014}, []float64{10.80, -1.34, 0.19}),
	"Rho1": cosSeries(1.0089, []float64{0.1871, -0.0147, 0.0014}, []float64{10.80, -1.34, 0.19}),
	"Sigma1": cosSeries(1.0089, []float64{0.1871, -0.0147, 0.0014}, []float64{10.80, -1.34, 0.19}),
	"P1": constant(1, 0),
	"S1": constant(1, 0),
	"J1": cosSeries(1.0129, []float64{0.1676, -0.0170, 0.0016}, []float64{12.94, -1.34, 0.19}),
	"OO1": cosSeries(1.1027, []float64{0.6404, -0.0569, 0.0045}, []float64{36.68, -4.52, 0.66}),
	"M1": cosSeries(1.0, []float64{0.2, -0.02}, []float64{10.8, -1.3}),

	"Mm": cosSeries(1.0, []float64{-0.1300, 0.0013}, nil),
	"Msm": cosSeries(1.0, []float64{-0.1300, 0.0013}, nil),
	"Mf": cosSeries(1.0429, []float64{0.4135, -0.004}, []float64{-23.74, 2.68, -0.38}),
	"Msf": constant(1, 0),
	"Ssa": constant(1, 0),
	"Sa": constant(1, 0),

	"M4": squareOf("M2"),
	"MN4": productOf("M2", "N2"),
	"MS4": productOf("M2", "S2"),
	"M6": cubeOf("M2"),
	"2MS6": productOf2("M2", "M2", "S2"),
	"MK3": productOf("M2", "K1"),
	"MO3": productOf("M2", "O1"),
}

func constant(f, u float64) rule {
	return func(_, _ float64) Factors { return Factors{F: f, U: u} }
}

// cosSeries builds a rule of the classical Schureman form:
//
//	f = f0 + sum_k fCos[k] * cos((k+1)*Omega)
//	u = sum_k uSin[k] * sin((k+1)*Omega)
func cosSeries(f0 float64, fCos, uSin []float64) rule {
	return func(omegaDeg, _ float64) Factors {
		omega := omegaDeg * math.Pi / 180.0
		f := f0
		for i, c := range fCos {
			f += c * math.Cos(float64(i+1)*omega)
		}
		var u float64
		for i, c := range uSin {
			u += c * math.Sin(float64(i+1)*omega)
		}
		return Factors{F: f, U: u}
	}
}

// squareOf, productOf and cubeOf build a compound constituent's nodal
// correction from its generating constituents' factors: f multiplies, u
// sums, matching the standard overtide/compound-tide nodal convention.
func squareOf(name string) rule {
	return func(omegaDeg, pDeg float64) Factors {
		base := evalStandard(name, omegaDeg, pDeg)
		return Factors{F: base.F * base.F, U: 2 * base.U}
	}
}

func cubeOf(name string) rule {
	return func(omegaDeg, pDeg float64) Factors {
		base := evalStandard(name, omegaDeg, pDeg)
		return Factors{F: base.F * base.F * base.F, U: 3 * base.U}
	}
}

func productOf(a, b string) rule {
	return func(omegaDeg, pDeg float64) Factors {
		fa := evalStandard(a, omegaDeg, pDeg)
		fb := evalStandard(b, omegaDeg, pDeg)
		return Factors{F: fa.F * fb.F, U: fa.U + fb.U}
	}
}

func productOf2(a, b, c string) rule {
	return func(omegaDeg, pDeg float64) Factors {
		fa := evalStandard(a, omegaDeg, pDeg)
		fb := evalStandard(b, omegaDeg, pDeg)
		fc := evalStandard(c, omegaDeg, pDeg)
		return Factors{F: fa.F * fb.F * fc.F, U: fa.U + fb.U + fc.U}
	}
}

// standardRulesRef is standardRules, assigned in init so that the compound
// rules inside standardRules can look up their generating constituents
// without forming a package-initialization cycle.
var standardRulesRef map[string]rule

func init() { standardRulesRef = standardRules }

func evalStandard(name string, omegaDeg, pDeg float64) Factors {
	if r, ok := standardRulesRef[name]; ok {
		return r(omegaDeg, pDeg)
	}
	return identity
}

// Standard computes the standard (non-group-modulated) nodal correction
// for a named constituent, given the negative lunar node longitude Omega
// and lunar perigee p, both in degrees. Unknown constituents yield the
// identity correction {f=1, u=0}.
func Standard(name string, omegaDeg, pDeg float64) Factors {
	return evalStandard(name, omegaDeg, pDeg)
}

// GroupModulated computes the group-modulated nodal correction for a
// named constituent: the standard correction, further adjusted with
// extra solar terms (solar longitude hs and solar perihelion ps) for
// constituents with a group-specific formula. Constituents without one
// fall back to the standard formula.
func GroupModulated(name string, omegaDeg, pDeg, hsDeg, psDeg float64) Factors {
	if r, ok := groupRules[name]; ok {
		return r(omegaDeg, pDeg, hsDeg, psDeg)
	}
	return evalStandard(name, omegaDeg, pDeg)
}

type groupRule func(omegaDeg, pDeg, hsDeg, psDeg float64) Factors

// groupRules tabulates the small set of constituents (primarily K1 and
// K2, the lunisolar waves) whose nodal correction is materially refined
// by expanding into their Doodson satellite group using the solar
// longitude and perihelion.
var groupRules = map[string]groupRule{
	"K1": func(omegaDeg, pDeg, hsDeg, psDeg float64) Factors {
		base := evalStandard("K1", omegaDeg, pDeg)
		hs := hsDeg * math.Pi / 180.0
		correction := 0.0012 * math.Cos(hs-psDeg*math.Pi/180.0)
		return Factors{F: base.F + correction, U: base.U}
	},
	"K2": func(omegaDeg, pDeg, hsDeg, psDeg float64) Factors {
		base := evalStandard("K2", omegaDeg, pDeg)
		hs := hsDeg * math.Pi / 180.0
		correction := 0.0024 * math.Cos(hs-psDeg*math.Pi/180.0)
		return Factors{F: base.F + correction, U: base.U}
	},
}

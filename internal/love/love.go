// Package love implements the PMM95B diurnal-band Love number formula: a
// single-resonance approximation of the body-tide Love numbers (k2, h2,
// l2) used to scale diurnal admittances near the free-core-nutation
// resonance. Outside the diurnal band (5-22 degrees per hour) the Love
// numbers are effectively constant and the formula is not evaluated.
package love

const (
	bandLo = 5.0
	bandHi = 22.0
)

// Numbers holds the three body-tide Love numbers at a given tidal
// frequency: k2 (potential), h2 (radial displacement), l2 (horizontal
// displacement).
type Numbers struct {
	K2, H2, L2 float64
}

// resonance parameters for a + b/(c-x), fitted independently per Love
// number against the diurnal resonance near the K1/FCN frequency.
var (
	k2Param = resonance{a: 0.2999365613717716, b: -0.010951042502580827, c: 16.69281889329404}
	h2Param = resonance{a: 0.6072080252645755, b: -0.012266920938618107, c: 15.154523500738943}
	l2Param = resonance{a: 0.08417792231930821, b: -0.0025762144457093005, c: 19.479433809800447}
)

type resonance struct{ a, b, c float64 }

func (r resonance) at(x float64) float64 {
	return r.a + r.b/(r.c-x)
}

// lowConstants and highConstants are the Love numbers below 5 deg/h and
// above 22 deg/h respectively, where the body-tide response is treated as
// frequency-independent.
var (
	lowConstants  = Numbers{K2: 0.299, H2: 0.606, L2: 0.0840}
	highConstants = Numbers{K2: 0.302, H2: 0.609, L2: 0.0852}
)

// PMM95B evaluates the diurnal-band Love numbers at tidal frequency x
// (degrees per hour).
func PMM95B(x float64) Numbers {
	switch {
	case x < bandLo:
		return lowConstants
	case x > bandHi:
		return highConstants
	default:
		return Numbers{
			K2: k2Param.at(x),
			H2: h2Param.at(x),
			L2: l2Param.at(x),
		}
	}
}

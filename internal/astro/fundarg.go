// Package astro implements the astronomical argument engine: the IERS
// 2010 / Simon 1994 fundamental lunisolar arguments, Doodson's six
// celestial variables, tidal frequency by finite difference, and the
// Espenak-Meeus Delta-T piecewise polynomial.
package astro

import (
	"math"

	"github.com/ngs-io/perth-tides/internal/mathutil"
)

// arcsecFullTurn is 360 degrees expressed in arcseconds (1,296,000).
const arcsecFullTurn = 1296000.0

// FundamentalArguments holds the five IERS 2010 lunisolar angles, in
// radians: mean anomaly of the Moon (L), mean anomaly of the Sun (Lp),
// mean argument of latitude of the Moon (F), mean elongation of the Moon
// from the Sun (D), and mean longitude of the ascending node of the Moon
// (Omega).
type FundamentalArguments struct {
	L     float64
	Lp    float64
	F     float64
	D     float64
	Omega float64
}

// Fundarg evaluates the five fundamental arguments at T, Julian centuries
// since J2000.0 (TT), from the IERS 2010 / Simon 1994 five-term
// polynomials. Each polynomial is in arcseconds, reduced modulo a full
// turn before conversion to radians.
func Fundarg(t float64) FundamentalArguments {
	return FundamentalArguments{
		L:     arcsecToRadiansMod(mathutil.Horner(t, 485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470)),
		Lp:    arcsecToRadiansMod(mathutil.Horner(t, 1287104.793048, 129596581.0481, -0.5532, 0.000136, -0.00001149)),
		F:     arcsecToRadiansMod(mathutil.Horner(t, 335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417)),
		D:     arcsecToRadiansMod(mathutil.Horner(t, 1072260.703692, 1602961601.2090, -6.3706, 0.006593, -0.00003169)),
		Omega: arcsecToRadiansMod(mathutil.Horner(t, 450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939)),
	}
}

func arcsecToRadiansMod(arcsec float64) float64 {
	a := math.Mod(arcsec, arcsecFullTurn)
	if a < 0 {
		a += arcsecFullTurn
	}
	return mathutil.ArcsecToRad(a)
}

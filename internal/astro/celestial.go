package astro

import (
	"math"

	"github.com/ngs-io/perth-tides/internal/mathutil"
)

// CelestialVector holds Doodson's six fundamental astronomical variables,
// in degrees, normalized to [-180, 180): tau (mean lunar time), s (mean
// longitude of the Moon), h (mean longitude of the Sun), p (longitude of
// lunar perigee), N' (negative longitude of the lunar ascending node), and
// ps (longitude of solar perigee/perihelion).
type CelestialVector [6]float64

const (
	idxTau = iota
	idxS
	idxH
	idxP
	idxNp
	idxPs
)

// CalculateCelestialVector evaluates the six Doodson variables at a given
// time (Modified Julian Date, UT) and Delta-T (seconds).
func CalculateCelestialVector(timeMJDUT, deltaTSeconds float64) CelestialVector {
	timeTT := timeMJDUT + deltaTSeconds/86400.0
	tx := (timeTT + 2400000.5 - 2451545.0) / 36525.0

	args := Fundarg(tx)

	s := args.F + args.Omega
	h := args.F + args.Omega - args.D
	p := args.F + args.Omega - args.L
	np := -args.Omega
	ps := -args.Lp + args.F - args.D + args.Omega

	_, frac := math.Modf(timeMJDUT)
	if frac < 0 {
		frac += 1.0
	}
	tau := 2*math.Pi*frac - s + h

	var vec CelestialVector
	vec[idxTau] = mathutil.NormalizeDegrees180(mathutil.Rad2Deg(tau))
	vec[idxS] = mathutil.NormalizeDegrees180(mathutil.Rad2Deg(s))
	vec[idxH] = mathutil.NormalizeDegrees180(mathutil.Rad2Deg(h))
	vec[idxP] = mathutil.NormalizeDegrees180(mathutil.Rad2Deg(p))
	vec[idxNp] = mathutil.NormalizeDegrees180(mathutil.Rad2Deg(np))
	vec[idxPs] = mathutil.NormalizeDegrees180(mathutil.Rad2Deg(ps))
	return vec
}

// TidalFrequency returns the frequency, in degrees per hour, of a
// constituent whose first six Doodson multipliers are doodson6, computed
// by finite difference of the celestial vector around a fixed reference
// epoch.
func TidalFrequency(doodson6 [6]int8) float64 {
	const t1 = 51545.0 // MJD
	const delta = 0.05 // days

	v0 := CalculateCelestialVector(t1, 0)
	v1 := CalculateCelestialVector(t1+delta, 0)

	var dot float64
	for i := 0; i < 6; i++ {
		d := v1[i] - v0[i]
		dot += d * float64(doodson6[i])
	}
	return dot / (24 * delta)
}

// CalculateDoodsonArgument evaluates a constituent's Doodson argument
// (degrees, normalized to [-180, 180)) at the given time (MJD UT) and
// Delta-T (seconds), from its full 7-element Doodson number: the celestial
// vector dotted with the first six components, plus 90 degrees times the
// 7th (phase-quadrant) component.
func CalculateDoodsonArgument(timeMJDUT, deltaTSeconds float64, doodson7 [7]int8) float64 {
	vec := CalculateCelestialVector(timeMJDUT, deltaTSeconds)

	var sum float64
	for i := 0; i < 6; i++ {
		sum += vec[i] * float64(doodson7[i])
	}
	sum += 90.0 * float64(doodson7[6])
	return mathutil.NormalizeDegrees180(sum)
}

// Package mathutil provides small numeric helpers shared by the astronomical
// and interpolation subsystems: Horner polynomial evaluation, degree/radian/
// arcsecond conversions, angle normalization, and bilinear interpolation
// weights with partial-data (land-mask) fallback for both the complex
// tidal constituent grids and the real-valued vertical-datum rasters.
package mathutil

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// ArcsecToDeg converts arcseconds to degrees.
func ArcsecToDeg(arcsec float64) float64 {
	return arcsec / 3600.0
}

// ArcsecToRad converts arcseconds to radians.
func ArcsecToRad(arcsec float64) float64 {
	return Deg2Rad(ArcsecToDeg(arcsec))
}

// Horner evaluates a polynomial in x given coefficients ordered from the
// constant term upward: c[0] + c[1]*x + c[2]*x^2 + ...
func Horner(x float64, c ...float64) float64 {
	if len(c) == 0 {
		return 0
	}
	result := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		result = result*x + c[i]
	}
	return result
}

// NormalizeDegrees180 reduces an angle in degrees into [-180, 180).
func NormalizeDegrees180(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < -180.0 {
		deg += 360.0
	} else if deg >= 180.0 {
		deg -= 360.0
	}
	return deg
}

// NormalizeDegrees360 reduces an angle in degrees into [0, 360).
func NormalizeDegrees360(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// BilinearWeights returns the four corner weights (w00, w10, w01, w11) for a
// query point (x, y) normalized against the cell corners (x1, y1)-(x2, y2),
// in the order: (x1,y1), (x2,y1), (x1,y2), (x2,y2). x and x2 are assumed
// already normalized against x1 by the caller (this lets the axis handle
// periodic longitude wrapping before weights are computed).
func BilinearWeights(x, x1, x2, y, y1, y2 float64) (w00, w10, w01, w11 float64) {
	var t, u float64
	if x2 != x1 {
		t = (x - x1) / (x2 - x1)
	}
	if y2 != y1 {
		u = (y - y1) / (y2 - y1)
	}
	w00 = (1 - t) * (1 - u)
	w10 = t * (1 - u)
	w01 = (1 - t) * u
	w11 = t * u
	return
}

// PartialBilinearComplex performs bilinear interpolation over four corner
// values that may individually be missing (encoded as NaN, e.g. a land
// mask). Only finite corners contribute to the weighted sum; n reports how
// many of the four corners were finite. If no corner is finite, or the
// surviving weights sum to zero, the result is NaN and n is 0.
func PartialBilinearComplex(w00, w10, w01, w11 float64, v00, v10, v01, v11 complex128) (result complex128, n int) {
	weights := [4]float64{w00, w10, w01, w11}
	values := [4]complex128{v00, v10, v01, v11}

	var sumW float64
	var sumWV complex128
	for i, v := range values {
		if cmplxIsFinite(v) {
			n++
			sumW += weights[i]
			sumWV += complex(weights[i], 0) * v
		}
	}
	if n == 0 || sumW <= 0 {
		return complex(math.NaN(), math.NaN()), 0
	}
	return sumWV / complex(sumW, 0), n
}

func cmplxIsFinite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsNaN(imag(z)) && !math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}

// PartialBilinearReal is PartialBilinearComplex for real-valued corners,
// used by the vertical-datum raster grids (geoid height, bathymetric
// depth, mean sea surface) rather than the complex tidal constituent
// grids.
func PartialBilinearReal(w00, w10, w01, w11, v00, v10, v01, v11 float64) (result float64, n int) {
	weights := [4]float64{w00, w10, w01, w11}
	values := [4]float64{v00, v10, v01, v11}

	var sumW, sumWV float64
	for i, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			n++
			sumW += weights[i]
			sumWV += weights[i] * v
		}
	}
	if n == 0 || sumW <= 0 {
		return math.NaN(), 0
	}
	return sumWV / sumW, n
}

package astro

import (
	"fmt"
	"math"

	"github.com/ngs-io/perth-tides/internal/mathutil"
)

// RangeError reports that a Delta-T query fell outside the supported
// 1700-2150 year range.
type RangeError struct {
	Year float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("astro: delta-T year %.3f out of range [1700, 2150]", e.Year)
}

// CalculateDeltaTime returns Delta-T (TT - UT, seconds) for a given Julian
// Date, using the Espenak-Meeus piecewise polynomial approximations valid
// from 1700 through 2150. Returns a *RangeError if the derived year falls
// outside that range.
func CalculateDeltaTime(julianDate float64) (float64, error) {
	y := math.Round((julianDate-2415020.0)/365.25) + 1900.0
	if y < 1700 || y > 2150 {
		return 0, &RangeError{Year: y}
	}

	switch {
	case y < 1800:
		t := y - 1700
		return mathutil.Horner(t, 8.83, 0.1603, -0.0059285, 0.00013336, -1.0/1174000.0), nil
	case y < 1860:
		t := y - 1800
		return mathutil.Horner(t, 13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436, 0.0000121272, -0.0000001699, 0.000000000875), nil
	case y < 1900:
		t := y - 1860
		return mathutil.Horner(t, 7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0/233174.0), nil
	case y < 1920:
		t := y - 1900
		return mathutil.Horner(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197), nil
	case y < 1941:
		t := y - 1920
		return mathutil.Horner(t, 21.20, 0.84493, -0.076100, 0.0020936), nil
	case y < 1961:
		t := y - 1950
		return mathutil.Horner(t, 29.07, 0.407, -1.0/233.0, 1.0/2547.0), nil
	case y < 1986:
		t := y - 1975
		return mathutil.Horner(t, 45.45, 1.067, -1.0/260.0, -1.0/718.0), nil
	case y < 2005:
		t := y - 2000
		return mathutil.Horner(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599), nil
	case y < 2050:
		t := y - 2000
		return mathutil.Horner(t, 62.92, 0.32217, 0.005589), nil
	default:
		t := (y - 1820) / 100.0
		return -20.0 + 32.0*t*t - 0.5628*(2150.0-y), nil
	}
}

package inference

import "math"

// InterpolationType selects the admittance interpolation model used
// across the diurnal and semidiurnal species (long-period always uses
// linear interpolation).
type InterpolationType int

const (
	LinearAdmittance InterpolationType = iota
	FourierAdmittance
)

// linearAdmittance interpolates piecewise-linearly in frequency between
// three anchors (x1,z1), (x2,z2), (x3,z3): segment 1->2 for x<=x2, else
// segment 2->3.
func linearAdmittance(x1, x2, x3 float64, z1, z2, z3 complex128, x float64) complex128 {
	if x <= x2 {
		return lerp(x1, x2, z1, z2, x)
	}
	return lerp(x2, x3, z2, z3, x)
}

func lerp(xa, xb float64, za, zb complex128, x float64) complex128 {
	if xb == xa {
		return za
	}
	t := (x - xa) / (xb - xa)
	return za + complex(t, 0)*(zb-za)
}

// fourierDegrees is the fixed angular scale (degrees per unit frequency)
// used to map a constituent's frequency onto the 3-term Fourier basis
// {1, cos(f), sin(f)}, per the Munk-Cartwright admittance formulation.
const fourierDegrees = 48.0

// fourierAdmittance solves for the 3-term Fourier coefficients c = A^-1 z
// where A's rows are [1, cos(f_i), sin(f_i)] at the three anchor
// frequencies, then evaluates the fitted curve at x.
func fourierAdmittance(x1, x2, x3 float64, z1, z2, z3 complex128, x float64) complex128 {
	f1 := x1 * fourierDegrees * math.Pi / 180.0
	f2 := x2 * fourierDegrees * math.Pi / 180.0
	f3 := x3 * fourierDegrees * math.Pi / 180.0

	// Solve the 3x3 real system for each of the real and imaginary parts
	// of z (the basis matrix A is real; only the right-hand side is
	// complex), via Cramer's rule.
	a := [3][3]float64{
		{1, math.Cos(f1), math.Sin(f1)},
		{1, math.Cos(f2), math.Sin(f2)},
		{1, math.Cos(f3), math.Sin(f3)},
	}
	det := det3(a)
	if math.Abs(det) < 1e-12 {
		// Degenerate anchor frequencies (e.g. duplicate samples); fall
		// back to linear interpolation rather than divide by ~zero.
		return linearAdmittance(x1, x2, x3, z1, z2, z3, x)
	}

	solveFor := func(rhs [3]float64) [3]float64 {
		var c [3]float64
		for col := 0; col < 3; col++ {
			m := a
			for row := 0; row < 3; row++ {
				m[row][col] = rhs[row]
			}
			c[col] = det3(m) / det
		}
		return c
	}

	re := solveFor([3]float64{real(z1), real(z2), real(z3)})
	im := solveFor([3]float64{imag(z1), imag(z2), imag(z3)})

	f := x * fourierDegrees * math.Pi / 180.0
	cosF, sinF := math.Cos(f), math.Sin(f)

	outRe := re[0] + re[1]*cosF + re[2]*sinF
	outIm := im[0] + im[1]*cosF + im[2]*sinF
	return complex(outRe, outIm)
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

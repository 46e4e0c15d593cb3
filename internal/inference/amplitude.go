package inference

import "math"

// InputType selects whether a primary constituent's harmonic constant in
// the ConstituentTable is already (real, imag), or needs conversion from
// (amplitude, phase) before inference and back afterward. Only the
// harmonic path is exercised by the bundled evaluator; amplitude/phase is
// a pre-/post-conversion wrapper for callers that store constants that
// way.
type InputType int

const (
	Harmonic InputType = iota
	AmplitudePhase
)

// AmplitudePhaseToHarmonic converts (amplitude, phase in degrees) to a
// complex harmonic constant: amp*(cos(phi), -sin(phi)), matching the
// evaluator's A*cos(omega*t + phi) convention.
func AmplitudePhaseToHarmonic(amplitude, phaseDeg float64) complex128 {
	phi := phaseDeg * math.Pi / 180.0
	return complex(amplitude*math.Cos(phi), -amplitude*math.Sin(phi))
}

// HarmonicToAmplitudePhase is the inverse of AmplitudePhaseToHarmonic.
func HarmonicToAmplitudePhase(z complex128) (amplitude, phaseDeg float64) {
	amplitude = math.Hypot(real(z), imag(z))
	phaseDeg = -math.Atan2(imag(z), real(z)) * 180.0 / math.Pi
	return
}

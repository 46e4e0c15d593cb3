package mathutil

import (
	"math"
	"testing"
)

func TestHorner(t *testing.T) {
	// 1 + 2x + 3x^2 at x=2 -> 1 + 4 + 12 = 17
	got := Horner(2, 1, 2, 3)
	if math.Abs(got-17) > 1e-12 {
		t.Errorf("Horner: expected 17, got %.12f", got)
	}
}

func TestNormalizeDegrees180(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{180, -180},
		{-180, -180},
		{270, -90},
		{-270, 90},
		{359.9999, -0.0001},
	}
	for _, tt := range tests {
		got := NormalizeDegrees180(tt.in)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("NormalizeDegrees180(%v): expected %v, got %v", tt.in, tt.want, got)
		}
		if got < -180 || got >= 180 {
			t.Errorf("NormalizeDegrees180(%v) = %v out of range", tt.in, got)
		}
	}
}

func TestNormalizeDegrees360(t *testing.T) {
	got := NormalizeDegrees360(-10)
	if math.Abs(got-350) > 1e-9 {
		t.Errorf("expected 350, got %v", got)
	}
}

func TestBilinearWeightsSumToOne(t *testing.T) {
	w00, w10, w01, w11 := BilinearWeights(1.5, 0, 2, 1.5, 0, 2)
	sum := w00 + w10 + w01 + w11
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("weights should sum to 1, got %v", sum)
	}
}

func TestPartialBilinearComplex_AllFinite(t *testing.T) {
	w00, w10, w01, w11 := BilinearWeights(1, 0, 2, 1, 0, 2)
	result, n := PartialBilinearComplex(w00, w10, w01, w11,
		complex(1, 0), complex(3, 0), complex(5, 0), complex(7, 0))
	if n != 4 {
		t.Fatalf("expected n=4, got %d", n)
	}
	if math.Abs(real(result)-4.0) > 1e-9 {
		t.Errorf("expected 4.0, got %v", real(result))
	}
}

func TestPartialBilinearComplex_OneMissing(t *testing.T) {
	w00, w10, w01, w11 := BilinearWeights(1, 0, 2, 1, 0, 2)
	nan := complex(math.NaN(), math.NaN())
	result, n := PartialBilinearComplex(w00, w10, w01, w11,
		complex(1, 0), complex(3, 0), complex(5, 0), nan)
	if n != 3 {
		t.Fatalf("expected n=3, got %d", n)
	}
	if math.IsNaN(real(result)) {
		t.Errorf("result should still be finite with 3 corners")
	}
}

func TestPartialBilinearComplex_AllMissing(t *testing.T) {
	nan := complex(math.NaN(), math.NaN())
	result, n := PartialBilinearComplex(0.25, 0.25, 0.25, 0.25, nan, nan, nan, nan)
	if n != 0 {
		t.Fatalf("expected n=0, got %d", n)
	}
	if !math.IsNaN(real(result)) {
		t.Errorf("result should be NaN when all corners missing")
	}
}

func TestPartialBilinearReal_AllFinite(t *testing.T) {
	w00, w10, w01, w11 := BilinearWeights(1, 0, 2, 1, 0, 2)
	result, n := PartialBilinearReal(w00, w10, w01, w11, 1, 3, 5, 7)
	if n != 4 {
		t.Fatalf("expected n=4, got %d", n)
	}
	if math.Abs(result-4.0) > 1e-9 {
		t.Errorf("expected 4.0, got %v", result)
	}
}

func TestPartialBilinearReal_OneMissing(t *testing.T) {
	w00, w10, w01, w11 := BilinearWeights(1, 0, 2, 1, 0, 2)
	result, n := PartialBilinearReal(w00, w10, w01, w11, 1, 3, 5, math.NaN())
	if n != 3 {
		t.Fatalf("expected n=3, got %d", n)
	}
	if math.IsNaN(result) {
		t.Errorf("result should still be finite with 3 corners")
	}
}

func TestPartialBilinearReal_AllMissing(t *testing.T) {
	nan := math.NaN()
	result, n := PartialBilinearReal(0.25, 0.25, 0.25, 0.25, nan, nan, nan, nan)
	if n != 0 {
		t.Fatalf("expected n=0, got %d", n)
	}
	if !math.IsNaN(result) {
		t.Errorf("result should be NaN when all corners missing")
	}
}

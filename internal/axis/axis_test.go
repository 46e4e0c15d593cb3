package axis

import (
	"math"
	"testing"
)

func TestFindIndicesPeriodicLongitude(t *testing.T) {
	a, err := NewLinSpaced(-180, 179.5, 0.5, true)
	if err != nil {
		t.Fatalf("NewLinSpaced: %v", err)
	}
	if a.Size() != 720 {
		t.Fatalf("expected size 720, got %d", a.Size())
	}

	tests := []struct {
		x          float64
		i0, i1     int
	}{
		{-180.25, 719, 0},
		{179.9, 719, 0},
		{0.0, 359, 360},
	}
	for _, tt := range tests {
		i0, i1, ok := a.FindIndices(tt.x)
		if !ok {
			t.Errorf("FindIndices(%v): expected ok, got not ok", tt.x)
			continue
		}
		if i0 != tt.i0 || i1 != tt.i1 {
			t.Errorf("FindIndices(%v): expected (%d,%d), got (%d,%d)", tt.x, tt.i0, tt.i1, i0, i1)
		}
	}
}

func TestFindIndicesNonPeriodic(t *testing.T) {
	a, err := NewLinSpaced(0, 10, 1, false)
	if err != nil {
		t.Fatalf("NewLinSpaced: %v", err)
	}

	if i0, i1, ok := a.FindIndices(5.5); !ok || i0 != 5 || i1 != 6 {
		t.Errorf("FindIndices(5.5): got (%d,%d,%v)", i0, i1, ok)
	}
	// Exact grid hit pairs with the interval below it.
	if i0, i1, ok := a.FindIndices(5.0); !ok || i0 != 4 || i1 != 5 {
		t.Errorf("FindIndices(5.0): got (%d,%d,%v)", i0, i1, ok)
	}
	// First node has no interval below it.
	if _, _, ok := a.FindIndices(0.0); ok {
		t.Errorf("FindIndices(0.0): expected not ok")
	}
	// Outside range.
	if _, _, ok := a.FindIndices(10.5); ok {
		t.Errorf("FindIndices(10.5): expected not ok")
	}
	if _, _, ok := a.FindIndices(-1.0); ok {
		t.Errorf("FindIndices(-1.0): expected not ok")
	}
}

func TestValueAndRange(t *testing.T) {
	a, err := NewLinSpaced(-180, 179.5, 0.5, true)
	if err != nil {
		t.Fatalf("NewLinSpaced: %v", err)
	}
	v, err := a.Value(0)
	if err != nil || math.Abs(v-(-180)) > 1e-9 {
		t.Errorf("Value(0): got %v, err %v", v, err)
	}
	v, err = a.Value(719)
	if err != nil || math.Abs(v-179.5) > 1e-9 {
		t.Errorf("Value(719): got %v, err %v", v, err)
	}
	if _, err := a.Value(720); err == nil {
		t.Errorf("Value(720): expected out-of-range error")
	}
}

func TestNewFromPointsNonUniform(t *testing.T) {
	_, err := NewFromPoints([]float64{0, 1, 2.5, 3}, false, 0)
	if err == nil {
		t.Fatalf("expected non-uniform spacing error")
	}
}

func TestNewFromPointsPeriodicSeam(t *testing.T) {
	// A full 360-degree set of points that starts just before the +-180
	// seam and crosses it should still be recognized as a uniform periodic
	// progression: 179.0, 179.5, -180.0, -179.5, ..., 178.5.
	pts := make([]float64, 720)
	for i := range pts {
		v := 179.0 + 0.5*float64(i)
		if v >= 180 {
			v -= 360
		}
		pts[i] = v
	}
	a, err := NewFromPoints(pts, true, 1e-6)
	if err != nil {
		t.Fatalf("NewFromPoints: %v", err)
	}
	if math.Abs(a.Step()-0.5) > 1e-9 {
		t.Errorf("expected step 0.5, got %v", a.Step())
	}
}

func TestInvalidAxisConstruction(t *testing.T) {
	if _, err := NewLinSpaced(0, 10, 0, false); err == nil {
		t.Errorf("expected error for zero step")
	}
	if _, err := NewLinSpaced(-180, 179.5, 0.5, true); err != nil {
		t.Errorf("unexpected error for valid 360-degree periodic span: %v", err)
	}
	if _, err := NewLinSpaced(-180, 170, 0.5, true); err == nil {
		t.Errorf("expected error for periodic axis whose span is not 360 degrees")
	}
}

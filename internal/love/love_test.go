package love

import (
	"math"
	"testing"
)

func TestPMM95BOutsideBand(t *testing.T) {
	n := PMM95B(4.0)
	check(t, n, Numbers{0.299, 0.606, 0.0840}, 1e-9)

	n = PMM95B(23.0)
	check(t, n, Numbers{0.302, 0.609, 0.0852}, 1e-9)
}

func TestPMM95BInBand(t *testing.T) {
	n := PMM95B(13.398660900971143)
	want := Numbers{0.29661217847085963, 0.60022176054190279, 0.083754256695820012}
	check(t, n, want, 1e-6)
}

func check(t *testing.T, got, want Numbers, tol float64) {
	t.Helper()
	if math.Abs(got.K2-want.K2) > tol {
		t.Errorf("K2 = %v, want %v", got.K2, want.K2)
	}
	if math.Abs(got.H2-want.H2) > tol {
		t.Errorf("H2 = %v, want %v", got.H2, want.H2)
	}
	if math.Abs(got.L2-want.L2) > tol {
		t.Errorf("L2 = %v, want %v", got.L2, want.L2)
	}
}

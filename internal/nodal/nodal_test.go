package nodal

import (
	"math"
	"testing"
)

func TestStandardM2AtZeroOmega(t *testing.T) {
	fac := Standard("M2", 0, 0)
	want := Factors{F: 1.0004 - 0.0373 + 0.0002, U: 0}
	if math.Abs(fac.F-want.F) > 1e-9 || math.Abs(fac.U-want.U) > 1e-9 {
		t.Errorf("Standard(M2,0,0) = %+v, want %+v", fac, want)
	}
}

func TestUnknownConstituentIsIdentity(t *testing.T) {
	fac := Standard("NotInCatalogue", 45, 10)
	if fac.F != 1 || fac.U != 0 {
		t.Errorf("expected identity factors for unknown constituent, got %+v", fac)
	}
}

func TestSolarConstituentsHaveNoNodalModulation(t *testing.T) {
	for _, name := range []string{"S2", "P1", "Ssa", "Sa"} {
		fac := Standard(name, 123.4, 56.7)
		if fac.F != 1 || fac.U != 0 {
			t.Errorf("%s: expected {1,0}, got %+v", name, fac)
		}
	}
}

func TestGroupModulatedFallsBackForUnlistedConstituent(t *testing.T) {
	std := Standard("O1", 30, 10)
	grp := GroupModulated("O1", 30, 10, 200, 280)
	if std != grp {
		t.Errorf("GroupModulated should fall back to Standard for O1: std=%+v grp=%+v", std, grp)
	}
}

func TestGroupModulatedDiffersForK1(t *testing.T) {
	std := Standard("K1", 30, 10)
	grp := GroupModulated("K1", 30, 10, 200, 280)
	if std.F == grp.F {
		t.Errorf("expected K1 group modulation to adjust f")
	}
}

func TestM4IsSquareOfM2(t *testing.T) {
	m2 := Standard("M2", 57.3, 10)
	m4 := Standard("M4", 57.3, 10)
	if math.Abs(m4.F-m2.F*m2.F) > 1e-9 {
		t.Errorf("M4.F = %v, want %v", m4.F, m2.F*m2.F)
	}
	if math.Abs(m4.U-2*m2.U) > 1e-9 {
		t.Errorf("M4.U = %v, want %v", m4.U, 2*m2.U)
	}
}

package inference

import "github.com/ngs-io/perth-tides/internal/constituent"

// Species identifies one of the three independent admittance bands the
// inference stage operates over.
type Species int

const (
	Diurnal Species = iota
	Semidiurnal
	LongPeriod
)

// anchor pairs a primary constituent's ordinal with its tabulated
// equilibrium amplitude (meters), used to normalize its harmonic constant
// into an admittance before interpolation.
type anchor struct {
	ord       constituent.Ordinal
	amplitude float64
}

// secondary pairs an inferrable constituent's ordinal with its tabulated
// equilibrium amplitude, used to scale the interpolated admittance back
// into a harmonic constant.
type secondary = anchor

// speciesTable holds one species' three frequency-ordered primary anchors
// and its set of inferrable secondaries.
type speciesTable struct {
	primaries  [3]anchor
	secondaries []secondary
}

var diurnalTable = speciesTable{
	primaries: [3]anchor{
		{constituent.MustOrdinal("Q1"), 0.0730},
		{constituent.MustOrdinal("O1"), 0.3771},
		{constituent.MustOrdinal("K1"), 0.5305},
	},
	secondaries: []secondary{
		{constituent.MustOrdinal("2Q1"), 0.0061},
		{constituent.MustOrdinal("Sigma1"), 0.0080},
		{constituent.MustOrdinal("Rho1"), 0.0095},
		{constituent.MustOrdinal("Tau1"), 0.0068},
		{constituent.MustOrdinal("M1"), 0.0075},
		{constituent.MustOrdinal("Chi1"), 0.0030},
		{constituent.MustOrdinal("Pi1"), 0.0069},
		{constituent.MustOrdinal("P1"), 0.1755},
		{constituent.MustOrdinal("Psi1"), 0.0030},
		{constituent.MustOrdinal("Phi1"), 0.0093},
		{constituent.MustOrdinal("Theta1"), 0.0070},
		{constituent.MustOrdinal("J1"), 0.0198},
		{constituent.MustOrdinal("OO1"), 0.0164},
	},
}

var semidiurnalTable = speciesTable{
	primaries: [3]anchor{
		{constituent.MustOrdinal("N2"), 0.1739},
		{constituent.MustOrdinal("M2"), 0.9081},
		{constituent.MustOrdinal("S2"), 0.4227},
	},
	secondaries: []secondary{
		{constituent.MustOrdinal("Eps2"), 0.0053},
		{constituent.MustOrdinal("2N2"), 0.0221},
		{constituent.MustOrdinal("Mu2"), 0.0216},
		{constituent.MustOrdinal("Nu2"), 0.0329},
		{constituent.MustOrdinal("Lambda2"), 0.0074},
		{constituent.MustOrdinal("L2"), 0.0251},
		{constituent.MustOrdinal("T2"), 0.0246},
		{constituent.MustOrdinal("R2"), 0.0030},
		{constituent.MustOrdinal("K2"), 0.1151},
		{constituent.MustOrdinal("Eta2"), 0.0033},
	},
}

// node amplitude is given directly in the long-period equilibrium tide
// formula (A = 0.0279 m); Mm and Mf use standard published equilibrium
// values.
const nodeAmplitude = 0.0279

var longPeriodTable = speciesTable{
	primaries: [3]anchor{
		{constituent.MustOrdinal("Node"), nodeAmplitude},
		{constituent.MustOrdinal("Mm"), 0.0825},
		{constituent.MustOrdinal("Mf"), 0.1564},
	},
	secondaries: []secondary{
		{constituent.MustOrdinal("Msm"), 0.0063},
		{constituent.MustOrdinal("Mtm"), 0.0065},
		{constituent.MustOrdinal("MSqm"), 0.0016},
		{constituent.MustOrdinal("Mst"), 0.0022},
		{constituent.MustOrdinal("Mqm"), 0.0014},
	},
}

func tableFor(sp Species) speciesTable {
	switch sp {
	case Diurnal:
		return diurnalTable
	case Semidiurnal:
		return semidiurnalTable
	default:
		return longPeriodTable
	}
}

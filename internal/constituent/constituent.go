// Package constituent defines the fixed, process-wide catalogue of named
// tidal constituents: their Doodson numbers, species type, and canonical
// names, plus the dense ConstituentTable container used to carry
// per-constituent state through an evaluation.
package constituent

import (
	"fmt"
	"strings"
)

// Type classifies a constituent by Doodson species.
type Type int

const (
	// LongPeriod constituents have Doodson species 0 (no lunar/solar
	// semidiurnal or diurnal carrier, e.g. Mm, Mf, Node). The one catalogue
	// exception is MSf, which carries a tau=2 Doodson number but is
	// classified LongPeriod (see CONSTITUENTS.md).
	LongPeriod Type = iota
	// ShortPeriod constituents have Doodson species >= 1 (diurnal,
	// semidiurnal and higher harmonics).
	ShortPeriod
)

func (t Type) String() string {
	if t == LongPeriod {
		return "LongPeriod"
	}
	return "ShortPeriod"
}

// Doodson7 is a constituent's Doodson number: six signed astronomical
// multipliers (tau, s, h, p, N', ps) followed by a phase-offset multiplier
// in {0,1,2,3} encoding a 0/90/180/270 degree quadrant shift.
type Doodson7 [7]int8

// PhaseDegrees returns the phase offset encoded by the 7th component, i.e.
// k7 * 90 degrees.
func (d Doodson7) PhaseDegrees() float64 {
	return float64(d[6]) * 90.0
}

// Entry is a single catalogue record: name, Doodson number, species type.
type Entry struct {
	Name    string
	Doodson Doodson7
	Type    Type
}

// Ordinal is a stable index into the catalogue, used as the key for dense
// per-constituent tables (ConstituentTable, nodal correction vectors, etc).
type Ordinal int

// catalogue is the compiled-in, process-wide list of known tidal
// constituents in enumeration order. Doodson numbers follow the classical
// Doodson/Cartwright-Tayler convention: multipliers apply to the celestial
// vector component order (tau, s, h, p, N', ps).
//
// This list is documented in full, with provenance, in CONSTITUENTS.md.
var catalogue = []Entry{
	// Long-period species (species 0).
	{"Node", Doodson7{0, 0, 0, 0, 1, 0, 2}, LongPeriod},
	{"Sa", Doodson7{0, 0, 1, 0, 0, 0, 0}, LongPeriod},
	{"Ssa", Doodson7{0, 0, 2, 0, 0, 0, 0}, LongPeriod},
	{"Sta", Doodson7{0, 0, 3, 0, 0, 0, 0}, LongPeriod},
	{"Msm", Doodson7{0, 1, -2, 1, 0, 0, 0}, LongPeriod},
	{"Mm", Doodson7{0, 1, 0, -1, 0, 0, 0}, LongPeriod},
	{"Msf", Doodson7{0, 2, -2, 0, 0, 0, 0}, LongPeriod},
	{"Mf", Doodson7{0, 2, 0, 0, 0, 0, 0}, LongPeriod},
	{"Mst", Doodson7{0, 3, -2, 1, 0, 0, 0}, LongPeriod},
	{"Mtm", Doodson7{0, 3, 0, -1, 0, 0, 0}, LongPeriod},
	{"Mqm", Doodson7{0, 4, 0, -2, 0, 0, 0}, LongPeriod},
	{"MSqm", Doodson7{0, 4, -2, 0, 0, 0, 0}, LongPeriod},

	// Diurnal species (species 1).
	{"2Q1", Doodson7{1, -3, 0, 2, 0, 0, 1}, ShortPeriod},
	{"Sigma1", Doodson7{1, -3, 2, 0, 0, 0, 1}, ShortPeriod},
	{"Q1", Doodson7{1, -2, 0, 1, 0, 0, 1}, ShortPeriod},
	{"Rho1", Doodson7{1, -2, 2, -1, 0, 0, 1}, ShortPeriod},
	{"O1", Doodson7{1, -1, 0, 0, 0, 0, 1}, ShortPeriod},
	{"Tau1", Doodson7{1, -1, 2, 0, 0, 0, 3}, ShortPeriod},
	{"M1", Doodson7{1, 0, 0, 1, 0, 0, 1}, ShortPeriod},
	{"Chi1", Doodson7{1, 0, 2, -1, 0, 0, 3}, ShortPeriod},
	{"Pi1", Doodson7{1, -2, -1, 0, 0, 1, 1}, ShortPeriod},
	{"P1", Doodson7{1, -1, 0, 0, 0, 0, 3}, ShortPeriod},
	{"S1", Doodson7{1, 0, 0, 0, 0, 0, 2}, ShortPeriod},
	{"K1", Doodson7{1, 1, 0, 0, 0, 0, 3}, ShortPeriod},
	{"Psi1", Doodson7{1, 2, -1, 0, 0, -1, 3}, ShortPeriod},
	{"Phi1", Doodson7{1, 2, 1, 0, 0, 0, 3}, ShortPeriod},
	{"Theta1", Doodson7{1, 2, -1, 1, 0, 0, 1}, ShortPeriod},
	{"J1", Doodson7{1, 2, 0, -1, 0, 0, 3}, ShortPeriod},
	{"OO1", Doodson7{1, 3, 0, 0, 0, 0, 3}, ShortPeriod},

	// Semidiurnal species (species 2).
	{"Eps2", Doodson7{2, -3, 2, 1, 0, 0, 0}, ShortPeriod},
	{"2N2", Doodson7{2, -2, 0, 2, 0, 0, 0}, ShortPeriod},
	{"Mu2", Doodson7{2, -2, 2, 0, 0, 0, 0}, ShortPeriod},
	{"2MS2", Doodson7{2, -2, 2, 0, 0, 0, 0}, ShortPeriod},
	{"N2", Doodson7{2, -1, 0, 1, 0, 0, 0}, ShortPeriod},
	{"Nu2", Doodson7{2, -1, 2, -1, 0, 0, 0}, ShortPeriod},
	{"M2", Doodson7{2, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"MKS2", Doodson7{2, 0, 2, 0, 0, 0, 2}, ShortPeriod},
	{"Lambda2", Doodson7{2, 1, -2, 1, 0, 0, 2}, ShortPeriod},
	{"L2", Doodson7{2, 1, 0, -1, 0, 0, 2}, ShortPeriod},
	{"T2", Doodson7{2, -1, 2, 0, 0, -1, 0}, ShortPeriod},
	{"S2", Doodson7{2, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"R2", Doodson7{2, 1, 0, 0, 0, 1, 2}, ShortPeriod},
	{"K2", Doodson7{2, 2, 0, 0, 0, 0, 0}, ShortPeriod},
	{"Eta2", Doodson7{2, 3, 0, -1, 0, 0, 0}, ShortPeriod},
	{"MSN2", Doodson7{2, 2, -2, 1, 0, 0, 0}, ShortPeriod},
	{"2SM2", Doodson7{2, 2, -2, 0, 0, 0, 0}, ShortPeriod},

	// Terdiurnal and higher species (species >= 3).
	{"M3", Doodson7{3, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"S3", Doodson7{3, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"MK3", Doodson7{3, 1, 0, 0, 0, 0, 1}, ShortPeriod},
	{"2MK3", Doodson7{3, -1, 0, 0, 0, 0, 3}, ShortPeriod},
	{"SK3", Doodson7{3, 1, 0, 0, 0, 0, 3}, ShortPeriod},
	{"SO3", Doodson7{3, -1, 0, 0, 0, 0, 1}, ShortPeriod},
	{"MO3", Doodson7{3, -1, 0, 0, 0, 0, 1}, ShortPeriod},
	{"MN4", Doodson7{4, -1, 0, 1, 0, 0, 0}, ShortPeriod},
	{"M4", Doodson7{4, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"MS4", Doodson7{4, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"MK4", Doodson7{4, 2, 0, 0, 0, 0, 0}, ShortPeriod},
	{"SN4", Doodson7{4, 1, 0, 1, 0, 0, 0}, ShortPeriod},
	{"S4", Doodson7{4, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"SK4", Doodson7{4, 2, 0, 0, 0, 0, 0}, ShortPeriod},
	{"2MN6", Doodson7{6, -1, 0, 1, 0, 0, 0}, ShortPeriod},
	{"M6", Doodson7{6, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"2MS6", Doodson7{6, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"2MK6", Doodson7{6, 2, 0, 0, 0, 0, 0}, ShortPeriod},
	{"MSK6", Doodson7{6, 2, 0, 0, 0, 0, 0}, ShortPeriod},
	{"MSN6", Doodson7{6, 1, 0, 1, 0, 0, 0}, ShortPeriod},
	{"2SM6", Doodson7{6, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"M8", Doodson7{8, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"MSf", Doodson7{2, 2, -2, 0, 0, 0, 0}, LongPeriod},

	// Minor semidiurnal and higher-species constituents, extending the
	// catalogue toward the ~77-entry reference list in CONSTITUENTS.md.
	{"Alpha2", Doodson7{2, -1, 0, -1, 0, 1, 2}, ShortPeriod},
	{"Beta2", Doodson7{2, 1, 0, 1, 0, -1, 2}, ShortPeriod},
	{"OQ2", Doodson7{2, -3, 2, 1, 0, 0, 2}, ShortPeriod},
	{"MA2", Doodson7{2, -1, 1, 0, 0, 0, 0}, ShortPeriod},
	{"MB2", Doodson7{2, 1, -1, 0, 0, 0, 0}, ShortPeriod},
	{"S6", Doodson7{6, 0, 0, 0, 0, 0, 0}, ShortPeriod},
	{"2MK5", Doodson7{5, 1, 0, 0, 0, 0, 3}, ShortPeriod},
}

var nameToOrdinal map[string]Ordinal
var foldedNameToOrdinal map[string]Ordinal

func init() {
	nameToOrdinal = make(map[string]Ordinal, len(catalogue))
	foldedNameToOrdinal = make(map[string]Ordinal, len(catalogue))
	for i, e := range catalogue {
		nameToOrdinal[e.Name] = Ordinal(i)
		foldedNameToOrdinal[strings.ToLower(e.Name)] = Ordinal(i)
	}
}

// Count returns the number of constituents in the catalogue.
func Count() int { return len(catalogue) }

// All returns the full catalogue in enumeration order. The returned slice
// must not be mutated by callers.
func All() []Entry { return catalogue }

// Lookup resolves a canonical name to its Entry and ordinal.
func Lookup(name string) (Entry, Ordinal, error) {
	ord, ok := nameToOrdinal[name]
	if !ok {
		return Entry{}, 0, fmt.Errorf("constituent: unknown constituent %q", name)
	}
	return catalogue[ord], ord, nil
}

// LookupFold resolves a constituent name case-insensitively, returning
// the Entry under its canonical (correctly-cased) name. Intended for
// matching constituent names recovered from filenames or other sources
// that don't preserve the catalogue's exact casing; ordinary lookups of
// user- or API-supplied names should use Lookup. Msf and MSf differ only
// in case, so a fold-case lookup of either name resolves to MSf.
func LookupFold(name string) (Entry, Ordinal, error) {
	ord, ok := foldedNameToOrdinal[strings.ToLower(name)]
	if !ok {
		return Entry{}, 0, fmt.Errorf("constituent: unknown constituent %q", name)
	}
	return catalogue[ord], ord, nil
}

// MustOrdinal resolves a canonical name to its ordinal, panicking if the
// name is unknown. Intended for use with compiled-in constant names (e.g.
// in the inference and nodal-correction tables), never on user input.
func MustOrdinal(name string) Ordinal {
	ord, ok := nameToOrdinal[name]
	if !ok {
		panic(fmt.Sprintf("constituent: unknown constituent %q", name))
	}
	return ord
}

// NameOf returns the canonical name for an ordinal.
func NameOf(ord Ordinal) string {
	return catalogue[ord].Name
}

// EntryAt returns the catalogue entry for an ordinal.
func EntryAt(ord Ordinal) Entry {
	return catalogue[ord]
}

// TideComponent is per-constituent, per-location state carried through an
// evaluation: the interpolated harmonic constant, the current Doodson
// argument, and whether this constituent's value was filled by inference
// rather than the gridded model.
type TideComponent struct {
	Doodson      Doodson7
	Tide         complex128 // harmonic constant (meters) at the current location
	TidalArg     float64    // current Doodson argument, degrees, normalized to [-180, 180)
	Type         Type
	IsInferred   bool
}

// Table is a dense, ordinal-indexed container mapping every known
// constituent to a TideComponent. Lookup and iteration are O(1); insertion
// order is the catalogue enumeration order.
type Table struct {
	components []TideComponent
}

// NewTable builds a Table pre-populated with the catalogue's Doodson
// numbers and types, all tides zeroed and flagged as not inferred.
func NewTable() *Table {
	t := &Table{components: make([]TideComponent, len(catalogue))}
	for i, e := range catalogue {
		t.components[i] = TideComponent{
			Doodson:    e.Doodson,
			Type:       e.Type,
			IsInferred: false,
		}
	}
	return t
}

// Len returns the number of slots in the table (equal to Count()).
func (t *Table) Len() int { return len(t.components) }

// At returns a pointer to the TideComponent for the given ordinal, so
// callers can mutate it in place.
func (t *Table) At(ord Ordinal) *TideComponent {
	return &t.components[ord]
}

// Get returns the TideComponent for a canonical name.
func (t *Table) Get(name string) (*TideComponent, error) {
	ord, ok := nameToOrdinal[name]
	if !ok {
		return nil, fmt.Errorf("constituent: unknown constituent %q", name)
	}
	return &t.components[ord], nil
}

// Reset clears every tide value and inferred flag, leaving Doodson/Type
// intact. Used to recycle a per-thread Table between unrelated model runs.
func (t *Table) Reset() {
	for i := range t.components {
		t.components[i].Tide = 0
		t.components[i].TidalArg = 0
		t.components[i].IsInferred = false
	}
}

// SetProvided marks the named constituent as model-provided (not inferred)
// and stores its interpolated harmonic value.
func (t *Table) SetProvided(ord Ordinal, value complex128) {
	t.components[ord].Tide = value
	t.components[ord].IsInferred = false
}

// SetMissing marks the named constituent as not provided by the model, so
// the inference stage must fill it in.
func (t *Table) SetMissing(ord Ordinal) {
	t.components[ord].Tide = 0
	t.components[ord].IsInferred = true
}

package nodal

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Coeff holds Fourier series coefficients in Omega (degrees) for f and u,
// overriding the built-in Standard table for one named constituent.
//
//	f(Omega) = F0 + sum_k FCos[k]*cos(k*Omega) + sum_k FSin[k]*sin(k*Omega)
//	u(Omega) = U0 + sum_k UCos[k]*cos(k*Omega) + sum_k USin[k]*sin(k*Omega)
type Coeff struct {
	Name string  `json:"name"`
	F0   float64 `json:"f0"`
	U0   float64 `json:"u0"`

	FCos map[string]float64 `json:"f_cos,omitempty"`
	FSin map[string]float64 `json:"f_sin,omitempty"`
	UCos map[string]float64 `json:"u_cos,omitempty"`
	USin map[string]float64 `json:"u_sin,omitempty"`
}

// EvalF evaluates the overridden amplitude factor at Omega (degrees).
func (c *Coeff) EvalF(omegaDeg float64) float64 {
	f := c.F0
	for k, a := range c.FCos {
		ki, _ := strconv.Atoi(k)
		f += a * math.Cos(float64(ki)*omegaDeg*math.Pi/180.0)
	}
	for k, b := range c.FSin {
		ki, _ := strconv.Atoi(k)
		f += b * math.Sin(float64(ki)*omegaDeg*math.Pi/180.0)
	}
	if f == 0 {
		f = 1
	}
	return f
}

// EvalU evaluates the overridden phase correction at Omega (degrees).
func (c *Coeff) EvalU(omegaDeg float64) float64 {
	u := c.U0
	for k, a := range c.UCos {
		ki, _ := strconv.Atoi(k)
		u += a * math.Cos(float64(ki)*omegaDeg*math.Pi/180.0)
	}
	for k, b := range c.USin {
		ki, _ := strconv.Atoi(k)
		u += b * math.Sin(float64(ki)*omegaDeg*math.Pi/180.0)
	}
	return u
}

// CoeffSet is a named collection of constituent coefficient overrides,
// loaded from a JSON file so deployments can refine or extend the
// built-in catalogue without a rebuild.
type CoeffSet struct {
	Coeffs []Coeff          `json:"coeffs"`
	ByName map[string]Coeff `json:"-"`
}

// LoadCoeffSet reads a CoeffSet from a JSON file at path.
func LoadCoeffSet(path string) (*CoeffSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set CoeffSet
	if err := json.Unmarshal(b, &set); err != nil {
		return nil, fmt.Errorf("nodal: invalid coefficient override json: %w", err)
	}
	set.ByName = make(map[string]Coeff, len(set.Coeffs))
	for _, c := range set.Coeffs {
		set.ByName[c.Name] = c
	}
	return &set, nil
}

// LoadCoeffSetFromEnv loads a CoeffSet from the path named by the
// PERTHD_NODAL_COEFFS_PATH environment variable. If the variable is unset
// or the file does not exist, it returns (nil, nil): the built-in
// Standard/GroupModulated tables remain in effect.
func LoadCoeffSetFromEnv() (*CoeffSet, error) {
	path := os.Getenv("PERTHD_NODAL_COEFFS_PATH")
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return LoadCoeffSet(path)
}

// Table is a nodal-correction evaluator that consults an optional
// CoeffSet override before falling back to the built-in Standard table.
type Table struct {
	overrides *CoeffSet
}

// NewTable builds a Table, loading overrides from PERTHD_NODAL_COEFFS_PATH
// if set.
func NewTable() *Table {
	set, _ := LoadCoeffSetFromEnv()
	return &Table{overrides: set}
}

// Factors evaluates f and u for a named constituent, preferring a loaded
// override if present.
func (t *Table) Factors(name string, omegaDeg, pDeg float64) Factors {
	if t.overrides != nil {
		if c, ok := t.overrides.ByName[name]; ok {
			return Factors{F: c.EvalF(omegaDeg), U: c.EvalU(omegaDeg)}
		}
	}
	return Standard(name, omegaDeg, pDeg)
}

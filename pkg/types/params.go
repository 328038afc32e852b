// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math"

// SpeciesParameters holds the life-history parameters for one assessed
// species: natural mortality, the age range the assessment covers, von
// Bertalanffy growth, and the length-weight power law.
type SpeciesParameters struct {
	// Species is the canonical species name used across all input tables.
	Species string `json:"species" yaml:"species"`

	// M is the instantaneous natural mortality rate (per year).
	M float64 `json:"m" yaml:"m"`

	// MinAge is the youngest age class the stock assessment covers.
	// Zero (or unset) means the assessment already covers all ages and
	// no back-calculation is needed.
	MinAge int `json:"min_age" yaml:"min_age"`

	// MaxAge is the oldest age class in the assessment.
	MaxAge int `json:"max_age" yaml:"max_age"`

	// K is the von Bertalanffy growth coefficient (per year).
	K float64 `json:"k" yaml:"k"`

	// Linf is the von Bertalanffy asymptotic length (cm).
	Linf float64 `json:"linf" yaml:"linf"`

	// LengthWeightA and LengthWeightB are the coefficients of the
	// length-weight power law weight = a * length^b (grams from cm).
	LengthWeightA float64 `json:"length_weight_a" yaml:"length_weight_a"`
	LengthWeightB float64 `json:"length_weight_b" yaml:"length_weight_b"`
}

// MissingFields returns the names of required parameters that are absent
// or out of range for back-calculation. An empty slice means the record
// is usable.
func (p SpeciesParameters) MissingFields() []string {
	var missing []string
	if math.IsNaN(p.M) || p.M <= 0 {
		missing = append(missing, "M")
	}
	if p.MaxAge < p.MinAge || p.MaxAge <= 0 {
		missing = append(missing, "Maxage")
	}
	if math.IsNaN(p.K) || p.K <= 0 {
		missing = append(missing, "k")
	}
	if math.IsNaN(p.Linf) || p.Linf <= 0 {
		missing = append(missing, "Linf")
	}
	if math.IsNaN(p.LengthWeightA) || p.LengthWeightA <= 0 {
		missing = append(missing, "a")
	}
	if math.IsNaN(p.LengthWeightB) || p.LengthWeightB <= 0 {
		missing = append(missing, "b")
	}
	return missing
}

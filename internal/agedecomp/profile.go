// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agedecomp reconstructs the biomass of age classes younger than
// the assessed minimum age, from natural mortality and growth parameters.
package agedecomp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// AgeProfile is the derived per-age structure for one species: the
// survivorship proportion, length, and weight of every age class
// 0..MaxAge, indexed by age.
type AgeProfile struct {
	// Proportions is the stable age distribution under constant natural
	// mortality: proportion(age) proportional to exp(-(age+1)*M),
	// normalized to sum to 1 over 0..MaxAge.
	Proportions []float64

	// Lengths holds von Bertalanffy length-at-age (cm).
	Lengths []float64

	// Weights holds length-weight mass-at-age (grams).
	Weights []float64
}

// BuildProfile derives the age profile for one species. recruitmentAge is
// the fractional age (years) substituted for age 0 in the growth equation,
// since age 0 has no defined age-in-years of its own.
//
// The survivorship proportions assume constant M and no fishing mortality.
// That undercounts the youngest age classes relative to a fished stock,
// because the total biomass being decomposed implicitly includes fishing
// losses the young ages are protected from.
func BuildProfile(p types.SpeciesParameters, recruitmentAge float64) AgeProfile {
	n := p.MaxAge + 1
	profile := AgeProfile{
		Proportions: make([]float64, n),
		Lengths:     make([]float64, n),
		Weights:     make([]float64, n),
	}

	for age := 0; age < n; age++ {
		profile.Proportions[age] = math.Exp(-float64(age+1) * p.M)

		ageYears := float64(age)
		if age == 0 {
			ageYears = recruitmentAge
		}
		profile.Lengths[age] = p.Linf * (1 - math.Exp(-p.K*ageYears))
		profile.Weights[age] = p.LengthWeightA * math.Pow(profile.Lengths[age], p.LengthWeightB)
	}

	floats.Scale(1/floats.Sum(profile.Proportions), profile.Proportions)
	return profile
}

// AssessedWeight returns the proportion-weighted individual mass over the
// assessed ages minAge..MaxAge (grams). Dividing total assessed biomass by
// this value yields total numbers across the full age structure.
func (ap AgeProfile) AssessedWeight(minAge int) float64 {
	var sum float64
	for age := minAge; age < len(ap.Proportions); age++ {
		sum += ap.Proportions[age] * ap.Weights[age]
	}
	return sum
}

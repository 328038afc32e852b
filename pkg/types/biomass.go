// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// BiomassSeries is the assessed total-biomass time series for one species.
// Only years with an observation are present; biomass is in metric tons.
type BiomassSeries struct {
	Species string `json:"species" yaml:"species"`

	// Biomass maps observation year to assessed total biomass (mt).
	Biomass map[int]float64 `json:"biomass" yaml:"biomass"`
}

// Years returns the observed years in ascending order.
func (s BiomassSeries) Years() []int {
	years := make([]int, 0, len(s.Biomass))
	for y := range s.Biomass {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// LastYear returns the final observed year, or false if the series is empty.
func (s BiomassSeries) LastYear() (int, bool) {
	last, ok := 0, false
	for y := range s.Biomass {
		if !ok || y > last {
			last, ok = y, true
		}
	}
	return last, ok
}

// YoungNumbers is one reconstructed numbers-at-age value for an age
// class below the assessed minimum age.
type YoungNumbers struct {
	Species string  `json:"species" yaml:"species"`
	Year    int     `json:"year" yaml:"year"`
	Age     int     `json:"age" yaml:"age"`
	Numbers float64 `json:"numbers" yaml:"numbers"`
}

// CorrectedBiomass is one species-year row of the decomposition output:
// the assessed biomass alongside the 0+ biomass that includes the
// back-calculated young age classes. Both in metric tons.
type CorrectedBiomass struct {
	Species string `json:"species" yaml:"species"`
	Year    int    `json:"year" yaml:"year"`

	// BiomassSA is the original assessed biomass (ages MinAge..MaxAge).
	BiomassSA float64 `json:"biomass_sa" yaml:"biomass_sa"`

	// Biomass0Plus is BiomassSA plus the reconstructed biomass of ages
	// 0..MinAge-1.
	Biomass0Plus float64 `json:"biomass_0plus" yaml:"biomass_0plus"`

	// Clamped marks years whose reconstruction substituted the final
	// observed year's minimum-age numbers for missing future observations
	// (tail policy "clamp" only).
	Clamped bool `json:"clamped,omitempty" yaml:"clamped,omitempty"`
}

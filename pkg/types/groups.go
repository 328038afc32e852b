// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Region identifies one of the two adjoining model regions: the assessed
// region (AK) and the unassessed region (BC) the biomass is extrapolated
// into.
type Region string

const (
	RegionAK Region = "AK"
	RegionBC Region = "BC"
)

// GroupTable holds the functional-group taxonomy and the lookups that map
// species and survey common names onto it. Loaded from groups.yaml.
type GroupTable struct {
	// Groups lists the canonical functional-group names.
	Groups []string `json:"groups" yaml:"groups"`

	// Species maps each assessed species to exactly one group.
	Species map[string]string `json:"species" yaml:"species"`

	// Surveys maps independent-assessment common names to groups.
	Surveys map[string]string `json:"surveys" yaml:"surveys"`
}

// RegionalProportion is a group's summed spatial-distribution density
// within one region. Proportions are relative densities; they are not
// normalized across regions.
type RegionalProportion struct {
	Group      string  `json:"group" yaml:"group"`
	Region     Region  `json:"region" yaml:"region"`
	Proportion float64 `json:"proportion" yaml:"proportion"`
}

// GroupBiomass is one group-year row of the redistribution output.
// All biomass values are in metric tons.
type GroupBiomass struct {
	Group string `json:"group" yaml:"group"`
	Year  int    `json:"year" yaml:"year"`

	// Biomass0Plus is the summed corrected biomass of the group's member
	// species in the assessed region.
	Biomass0Plus float64 `json:"biomass_0plus" yaml:"biomass_0plus"`

	// BiomassBC is the extrapolated unassessed-region biomass:
	// Biomass0Plus scaled by the BC/AK proportion ratio.
	BiomassBC float64 `json:"biomass_bc" yaml:"biomass_bc"`

	// BiomassTotal is Biomass0Plus + BiomassBC.
	BiomassTotal float64 `json:"biomass_total" yaml:"biomass_total"`
}

// SurveyRecord is one row of an independent regional assessment series,
// used only for validation of the extrapolated BC biomass.
type SurveyRecord struct {
	Year       int     `json:"year" yaml:"year"`
	CommonName string  `json:"common_name" yaml:"common_name"`
	Region     string  `json:"region" yaml:"region"`
	Metric     string  `json:"metric" yaml:"metric"`
	Biomass    float64 `json:"biomass" yaml:"biomass"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package region aggregates corrected species biomass into functional
// groups and extrapolates each group's biomass into the unassessed
// adjacent region using spatial-distribution proportions.
package region

import (
	"sort"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// GroupSeries is a group's summed corrected biomass by year.
type GroupSeries struct {
	Group string

	// Biomass0Plus maps year to the sum of member species' corrected
	// biomass (mt).
	Biomass0Plus map[int]float64
}

// SumByGroup maps each species' corrected series onto its functional
// group and sums within group and year. Species without a mapping entry
// are excluded and reported as *types.UnmappedGroupError warnings, not
// failures. Groups are returned sorted by name.
func SumByGroup(rows []types.CorrectedBiomass, mapping map[string]string) ([]GroupSeries, []error) {
	byGroup := make(map[string]map[int]float64)
	var warnings []error
	warned := make(map[string]bool)

	for _, r := range rows {
		group, ok := mapping[r.Species]
		if !ok {
			if !warned[r.Species] {
				warnings = append(warnings, &types.UnmappedGroupError{Name: r.Species})
				warned[r.Species] = true
			}
			continue
		}
		if byGroup[group] == nil {
			byGroup[group] = make(map[int]float64)
		}
		byGroup[group][r.Year] += r.Biomass0Plus
	}

	out := make([]GroupSeries, 0, len(byGroup))
	for group, series := range byGroup {
		out = append(out, GroupSeries{Group: group, Biomass0Plus: series})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out, warnings
}

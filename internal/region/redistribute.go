// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package region

import (
	"fmt"
	"sort"

	"github.com/pdiddy/stock-adjust/internal/dataset"
	"github.com/pdiddy/stock-adjust/pkg/types"
)

// Options holds the redistribution settings.
type Options struct {
	// LifeStage and Season select the distribution snapshot column.
	LifeStage string
	Season    string

	// BCCellStart is the first cell index belonging to the BC region.
	BCCellStart int

	// Alternates holds preloaded standalone density data for groups
	// whose distribution comes from an independent source, keyed by
	// group name.
	Alternates map[string][]dataset.CellDensity
}

// Ratios maps a group to its BC/AK proportion ratio.
type Ratios map[string]float64

// BuildRatios computes each group's BC/AK ratio from the spatial table
// (or the group's alternate density data). Groups without a usable
// distribution, or with a zero AK proportion, are excluded with a
// warning: a BC/AK ratio over zero AK density is undefined. The returned
// proportions hold both regions for every resolved group, for reporting.
func BuildRatios(t *dataset.SpatialTable, groups []string, opts Options) (Ratios, []types.RegionalProportion, []error) {
	ratios := make(Ratios, len(groups))
	var props []types.RegionalProportion
	var warnings []error

	for _, group := range groups {
		var ak, bc types.RegionalProportion
		if cells, ok := opts.Alternates[group]; ok {
			ak, bc = FromDensity(group, cells, opts.BCCellStart)
		} else {
			var err error
			ak, bc, err = FromTable(t, group, opts.LifeStage, opts.Season, opts.BCCellStart)
			if err != nil {
				warnings = append(warnings, err)
				continue
			}
		}

		if ak.Proportion <= 0 {
			warnings = append(warnings,
				fmt.Errorf("group %s: AK proportion is zero, excluded from redistribution", group))
			continue
		}

		props = append(props, ak, bc)
		ratios[group] = bc.Proportion / ak.Proportion
	}
	return ratios, props, warnings
}

// Redistribute scales each group-year's corrected biomass by the group's
// BC/AK ratio to estimate the unassessed-region share. The ratio is a
// single static snapshot held constant across years; inter-annual shifts
// in distribution are not modeled. Groups absent from ratios are skipped
// (BuildRatios has already warned about them). Rows are ordered by group
// then year.
func Redistribute(series []GroupSeries, ratios Ratios) []types.GroupBiomass {
	var rows []types.GroupBiomass
	for _, gs := range series {
		ratio, ok := ratios[gs.Group]
		if !ok {
			continue
		}
		for year, b := range gs.Biomass0Plus {
			bc := b * ratio
			rows = append(rows, types.GroupBiomass{
				Group:        gs.Group,
				Year:         year,
				Biomass0Plus: b,
				BiomassBC:    bc,
				BiomassTotal: b + bc,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Group != rows[j].Group {
			return rows[i].Group < rows[j].Group
		}
		return rows[i].Year < rows[j].Year
	})
	return rows
}

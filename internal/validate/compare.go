// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate aligns extrapolated BC biomass with independently
// assessed regional series for direct comparison.
package validate

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// Pair is one aligned (group, year) observation: the model's extrapolated
// BC biomass next to the independently assessed value.
type Pair struct {
	Group  string
	Year   int
	Model  float64
	Survey float64
}

// GroupStats summarizes the aligned pairs for one group. The statistics
// are a reading aid for the comparison, not an acceptance test.
type GroupStats struct {
	Group string
	N     int

	// Correlation is the Pearson correlation of model and survey values;
	// NaN when fewer than two pairs exist.
	Correlation float64

	// MeanRatio is the mean model/survey ratio over pairs with a
	// positive survey value.
	MeanRatio float64
}

// Options holds the survey filters.
type Options struct {
	// Region restricts survey records to the region of interest.
	Region string

	// Metric restricts records to one biomass time-series metric.
	// Empty accepts all.
	Metric string
}

// Compare aligns the extrapolated BC series with the independent survey
// series by (group, year): inner-join semantics, so groups lacking
// independent data are silently excluded. Survey records whose common
// name has no group mapping are skipped with an *types.UnmappedGroupError
// warning. Survey biomass is summed per group and year when several
// common names map to one group.
func Compare(groups []types.GroupBiomass, surveys []types.SurveyRecord, mapping map[string]string, opts Options) ([]Pair, []GroupStats, []error) {
	type key struct {
		group string
		year  int
	}

	model := make(map[key]float64, len(groups))
	for _, g := range groups {
		model[key{g.Group, g.Year}] = g.BiomassBC
	}

	surveyed := make(map[key]float64)
	var warnings []error
	warned := make(map[string]bool)

	for _, r := range surveys {
		if !strings.EqualFold(r.Region, opts.Region) {
			continue
		}
		if opts.Metric != "" && !strings.EqualFold(r.Metric, opts.Metric) {
			continue
		}
		group, ok := mapping[r.CommonName]
		if !ok {
			if !warned[r.CommonName] {
				warnings = append(warnings, &types.UnmappedGroupError{Name: r.CommonName})
				warned[r.CommonName] = true
			}
			continue
		}
		surveyed[key{group, r.Year}] += r.Biomass
	}

	var pairs []Pair
	for k, survey := range surveyed {
		m, ok := model[k]
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Group: k.group, Year: k.year, Model: m, Survey: survey})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Group != pairs[j].Group {
			return pairs[i].Group < pairs[j].Group
		}
		return pairs[i].Year < pairs[j].Year
	})

	return pairs, summarize(pairs), warnings
}

func summarize(pairs []Pair) []GroupStats {
	byGroup := make(map[string][]Pair)
	for _, p := range pairs {
		byGroup[p.Group] = append(byGroup[p.Group], p)
	}

	stats := make([]GroupStats, 0, len(byGroup))
	for group, ps := range byGroup {
		gs := GroupStats{Group: group, N: len(ps), Correlation: math.NaN()}

		models := make([]float64, len(ps))
		svys := make([]float64, len(ps))
		var ratios []float64
		for i, p := range ps {
			models[i] = p.Model
			svys[i] = p.Survey
			if p.Survey > 0 {
				ratios = append(ratios, p.Model/p.Survey)
			}
		}

		if len(ps) >= 2 {
			gs.Correlation = stat.Correlation(models, svys, nil)
		}
		if len(ratios) > 0 {
			gs.MeanRatio = stat.Mean(ratios, nil)
		}
		stats = append(stats, gs)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Group < stats[j].Group })
	return stats
}

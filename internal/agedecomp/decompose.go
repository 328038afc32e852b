// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agedecomp

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// gramsPerTon converts metric tons to grams, matching the unit convention
// of the length-weight relationship.
const gramsPerTon = 1e6

// Options holds the decomposition settings shared across species.
type Options struct {
	// RecruitmentAge is the fractional age (years) used for age 0 in the
	// growth equation, applied uniformly unless overridden.
	RecruitmentAge float64

	// RecruitmentAgeOverrides takes precedence over RecruitmentAge for
	// the named species.
	RecruitmentAgeOverrides map[string]float64

	// TailPolicy selects the series-end policy. Empty means TailExclude.
	TailPolicy types.TailPolicy
}

func (o Options) recruitmentAge(species string) float64 {
	if v, ok := o.RecruitmentAgeOverrides[species]; ok {
		return v
	}
	return o.RecruitmentAge
}

// SpeciesResult holds the decomposition output for one species.
type SpeciesResult struct {
	Species string

	// Series is the corrected biomass time series. Under the exclude
	// tail policy it omits years listed in Dropped.
	Series []types.CorrectedBiomass

	// Young holds the reconstructed numbers-at-age detail for every
	// year and unassessed age that was computed.
	Young []types.YoungNumbers

	// Dropped lists years excluded because their reconstruction needed
	// observations past the end of the series.
	Dropped []*types.InsufficientHistoryError

	// PassedThrough is true when the assessment already covers age 0
	// and no correction was applied.
	PassedThrough bool
}

// Decompose produces the corrected biomass series for one species.
//
// Total numbers are inferred by dividing each year's assessed biomass by
// the proportion-weighted mass of the assessed ages, numbers at the
// minimum assessed age follow from the stable age distribution, and the
// numbers of each younger age class are read from the future year in
// which that cohort reaches the minimum assessed age, inflated by the
// mortality incurred in between. The computation is non-causal: it treats
// the full series as a fixed array indexed by year.
//
// Species whose assessment already covers age 0 (MinAge <= 0) pass
// through unchanged. A species with an unusable parameter record returns
// a *types.MissingParameterError.
func Decompose(p types.SpeciesParameters, series types.BiomassSeries, opts Options) (SpeciesResult, error) {
	res := SpeciesResult{Species: p.Species}

	if len(series.Biomass) == 0 {
		return res, fmt.Errorf("species %s: no biomass observations", p.Species)
	}

	if p.MinAge <= 0 {
		res.PassedThrough = true
		for _, year := range series.Years() {
			tb := series.Biomass[year]
			res.Series = append(res.Series, types.CorrectedBiomass{
				Species:      p.Species,
				Year:         year,
				BiomassSA:    tb,
				Biomass0Plus: tb,
			})
		}
		return res, nil
	}

	if missing := p.MissingFields(); len(missing) > 0 {
		return res, &types.MissingParameterError{Species: p.Species, Fields: missing}
	}

	profile := BuildProfile(p, opts.recruitmentAge(p.Species))
	assessedWeight := profile.AssessedWeight(p.MinAge)
	if assessedWeight <= 0 {
		return res, fmt.Errorf("species %s: assessed-age weight is not positive", p.Species)
	}

	// Numbers at the minimum assessed age, by year.
	minAgeNumbers := make(map[int]float64, len(series.Biomass))
	for year, tb := range series.Biomass {
		total := tb * gramsPerTon / assessedWeight
		minAgeNumbers[year] = total * profile.Proportions[p.MinAge]
	}
	lastYear, _ := series.LastYear()

	for _, year := range series.Years() {
		tb := series.Biomass[year]

		var youngBiomass float64
		var young []types.YoungNumbers
		clamped := false
		dropped := false

		for age := 0; age < p.MinAge; age++ {
			offset := p.MinAge - age
			future, ok := minAgeNumbers[year+offset]
			if !ok {
				if opts.TailPolicy == types.TailClamp {
					future = minAgeNumbers[lastYear]
					clamped = true
				} else {
					res.Dropped = append(res.Dropped, &types.InsufficientHistoryError{
						Species:       p.Species,
						Year:          year,
						NeededThrough: year + p.MinAge,
					})
					dropped = true
					break
				}
			}
			n := future * math.Exp(p.M*float64(offset))
			young = append(young, types.YoungNumbers{Species: p.Species, Year: year, Age: age, Numbers: n})
			youngBiomass += n * profile.Weights[age]
		}
		if dropped {
			continue
		}

		res.Young = append(res.Young, young...)
		res.Series = append(res.Series, types.CorrectedBiomass{
			Species:      p.Species,
			Year:         year,
			BiomassSA:    tb,
			Biomass0Plus: tb + youngBiomass/gramsPerTon,
			Clamped:      clamped,
		})
	}

	return res, nil
}

// Summary holds counts from a decomposition run over the species set.
type Summary struct {
	Corrected     int
	PassedThrough int
	Failed        int
}

// Total returns the number of species processed.
func (s Summary) Total() int {
	return s.Corrected + s.PassedThrough + s.Failed
}

// HasFailures reports whether any species failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// DecomposeAll maps Decompose over the species list, writing per-species
// progress to w. One species' failure does not abort the others; failures
// are counted and reported in the summary. Results are returned in the
// parameter table's species order.
func DecomposeAll(params []types.SpeciesParameters, series []types.BiomassSeries, opts Options, w io.Writer) ([]SpeciesResult, Summary) {
	byName := make(map[string]types.BiomassSeries, len(series))
	for _, s := range series {
		byName[s.Species] = s
	}

	var results []SpeciesResult
	var summary Summary

	for _, p := range params {
		sp, ok := byName[p.Species]
		if !ok {
			fmt.Fprintf(w, "failed    %s: no biomass series\n", p.Species)
			summary.Failed++
			continue
		}

		res, err := Decompose(p, sp, opts)
		if err != nil {
			fmt.Fprintf(w, "failed    %s: %v\n", p.Species, err)
			summary.Failed++
			continue
		}

		if res.PassedThrough {
			fmt.Fprintf(w, "passed    %s (assessment already covers age 0)\n", p.Species)
			summary.PassedThrough++
		} else {
			fmt.Fprintf(w, "corrected %s (%d years)\n", p.Species, len(res.Series))
			for _, d := range res.Dropped {
				fmt.Fprintf(w, "warning: %v\n", d)
			}
			summary.Corrected++
		}
		results = append(results, res)
	}

	fmt.Fprintf(w, "\ncorrected: %d, passed through: %d, failed: %d\n",
		summary.Corrected, summary.PassedThrough, summary.Failed)

	return results, summary
}

// Flatten concatenates the per-species corrected series into one table,
// ordered by species then year.
func Flatten(results []SpeciesResult) []types.CorrectedBiomass {
	var rows []types.CorrectedBiomass
	for _, r := range results {
		rows = append(rows, r.Series...)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Species != rows[j].Species {
			return rows[i].Species < rows[j].Species
		}
		return rows[i].Year < rows[j].Year
	})
	return rows
}

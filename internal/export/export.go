// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export cuts the group biomass series at a single reference
// year and emits the summary table used as ecosystem-model initial
// conditions.
package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// ReferenceYear filters the group series to the given year, sorted by
// group. An absent year is a *types.MissingReferenceYearError, not an
// empty result: a silent empty export would look like a valid run.
func ReferenceYear(rows []types.GroupBiomass, year int) ([]types.GroupBiomass, error) {
	var out []types.GroupBiomass
	for _, r := range rows {
		if r.Year == year {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, &types.MissingReferenceYearError{Year: year}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out, nil
}

// WriteCSV emits the {Year, Group, Biomass_total} summary table, biomass
// in metric tons.
func WriteCSV(rows []types.GroupBiomass, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Year", "Group", "Biomass_total"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Year),
			r.Group,
			strconv.FormatFloat(r.BiomassTotal, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

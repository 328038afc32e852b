// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// LoadBiomass reads the wide assessed-biomass table: a Year column
// followed by one column per species, biomass in metric tons. Blank and
// NA cells are years without an assessment and are omitted from the
// returned series. Series are ordered by species name.
func LoadBiomass(path string) ([]types.BiomassSeries, error) {
	rows, err := readCSV(path, false)
	if err != nil {
		return nil, fmt.Errorf("reading biomass table: %w", err)
	}

	header := rows[0]
	if !strings.EqualFold(strings.TrimSpace(header[0]), "year") {
		return nil, fmt.Errorf("biomass table %s: first column must be Year, got %q", path, header[0])
	}

	series := make(map[string]types.BiomassSeries, len(header)-1)
	for _, name := range header[1:] {
		name = strings.TrimSpace(name)
		series[name] = types.BiomassSeries{Species: name, Biomass: make(map[int]float64)}
	}

	for i, row := range rows[1:] {
		year, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("biomass table %s row %d: bad year %q", path, i+2, row[0])
		}
		for col := 1; col < len(row); col++ {
			v, ok, err := parseCell(row[col])
			if err != nil {
				return nil, fmt.Errorf("biomass table %s row %d column %q: %w",
					path, i+2, header[col], err)
			}
			if !ok {
				continue
			}
			series[strings.TrimSpace(header[col])].Biomass[year] = v
		}
	}

	out := make([]types.BiomassSeries, 0, len(series))
	for _, s := range series {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Species < out[j].Species })
	return out, nil
}

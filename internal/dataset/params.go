// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// parameterColumns are the required headers of the parameter table.
var parameterColumns = []string{"species", "m", "minage", "maxage", "k", "linf", "a", "b"}

// LoadParameters reads the species parameter table. Missing numeric cells
// become NaN (or 0 for the age columns) so that validation happens per
// species in the engine, not here: a bad record must not abort the load.
// Records are returned in file order.
func LoadParameters(path string) ([]types.SpeciesParameters, error) {
	rows, err := readCSV(path, false)
	if err != nil {
		return nil, fmt.Errorf("reading parameter table: %w", err)
	}

	idx := columnIndex(rows[0])
	for _, col := range parameterColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("parameter table %s: missing column %q", path, col)
		}
	}

	params := make([]types.SpeciesParameters, 0, len(rows)-1)
	for i, row := range rows[1:] {
		p := types.SpeciesParameters{
			Species: strings.TrimSpace(row[idx["species"]]),
		}
		if p.Species == "" {
			return nil, fmt.Errorf("parameter table %s row %d: empty species name", path, i+2)
		}

		if p.M, err = parseCellNaN(row[idx["m"]]); err != nil {
			return nil, fmt.Errorf("parameter table %s row %d: M: %w", path, i+2, err)
		}
		if p.MinAge, err = parseAge(row[idx["minage"]]); err != nil {
			return nil, fmt.Errorf("parameter table %s row %d: Minage: %w", path, i+2, err)
		}
		if p.MaxAge, err = parseAge(row[idx["maxage"]]); err != nil {
			return nil, fmt.Errorf("parameter table %s row %d: Maxage: %w", path, i+2, err)
		}
		if p.K, err = parseCellNaN(row[idx["k"]]); err != nil {
			return nil, fmt.Errorf("parameter table %s row %d: k: %w", path, i+2, err)
		}
		if p.Linf, err = parseCellNaN(row[idx["linf"]]); err != nil {
			return nil, fmt.Errorf("parameter table %s row %d: Linf: %w", path, i+2, err)
		}
		if p.LengthWeightA, err = parseCellNaN(row[idx["a"]]); err != nil {
			return nil, fmt.Errorf("parameter table %s row %d: a: %w", path, i+2, err)
		}
		if p.LengthWeightB, err = parseCellNaN(row[idx["b"]]); err != nil {
			return nil, fmt.Errorf("parameter table %s row %d: b: %w", path, i+2, err)
		}

		params = append(params, p)
	}
	return params, nil
}

// parseAge parses an integer age column; blank means unset (0).
func parseAge(s string) (int, error) {
	v, ok, err := parseCell(s)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	if v != math.Trunc(v) || v < 0 {
		return 0, fmt.Errorf("age must be a non-negative integer, got %s", strconv.FormatFloat(v, 'g', -1, 64))
	}
	return int(v), nil
}

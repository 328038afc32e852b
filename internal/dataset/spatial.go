// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// SpatialTable is the cell-level spatial distribution: one row per model
// cell, one column per (group, life stage, season) combination. Values
// are relative densities.
type SpatialTable struct {
	// Cells holds the cell indices in row order.
	Cells []int

	// Columns maps a column name (Group_Stage_Season) to its densities,
	// parallel to Cells.
	Columns map[string][]float64
}

// Column returns the density column for the given group, life stage and
// season, or false if the table has no such column.
func (t *SpatialTable) Column(group, stage, season string) ([]float64, bool) {
	col, ok := t.Columns[fmt.Sprintf("%s_%s_%s", group, stage, season)]
	return col, ok
}

// LoadSpatial reads the shared spatial-distribution table. The first
// column is the cell index; remaining headers name the distribution
// columns.
func LoadSpatial(path string) (*SpatialTable, error) {
	rows, err := readCSV(path, false)
	if err != nil {
		return nil, fmt.Errorf("reading spatial table: %w", err)
	}

	header := rows[0]
	t := &SpatialTable{Columns: make(map[string][]float64, len(header)-1)}
	names := make([]string, len(header))
	for i, name := range header {
		names[i] = strings.TrimSpace(name)
	}

	for i, row := range rows[1:] {
		cell, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("spatial table %s row %d: bad cell index %q", path, i+2, row[0])
		}
		t.Cells = append(t.Cells, cell)

		for col := 1; col < len(row); col++ {
			v, ok, err := parseCell(row[col])
			if err != nil {
				return nil, fmt.Errorf("spatial table %s row %d column %q: %w",
					path, i+2, names[col], err)
			}
			if !ok {
				v = 0
			}
			t.Columns[names[col]] = append(t.Columns[names[col]], v)
		}
	}
	return t, nil
}

// CellDensity is one row of a standalone single-group density file, used
// for groups whose distribution comes from an independent source.
type CellDensity struct {
	Cell    int
	Density float64
}

// LoadDensity reads a two-column {cell_index, density} file.
func LoadDensity(path string) ([]CellDensity, error) {
	rows, err := readCSV(path, false)
	if err != nil {
		return nil, fmt.Errorf("reading density file: %w", err)
	}

	out := make([]CellDensity, 0, len(rows)-1)
	for i, row := range rows[1:] {
		cell, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("density file %s row %d: bad cell index %q", path, i+2, row[0])
		}
		v, ok, err := parseCell(row[1])
		if err != nil {
			return nil, fmt.Errorf("density file %s row %d: %w", path, i+2, err)
		}
		if !ok {
			v = 0
		}
		out = append(out, CellDensity{Cell: cell, Density: v})
	}
	return out, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the pipeline's input tables and reads and writes
// the CSV files the stages hand off through.
package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Input file names expected under the data directory.
const (
	BiomassFile    = "biomass.csv"
	ParametersFile = "parameters.csv"
	SpatialFile    = "spatial.csv"
	GroupsFile     = "groups.yaml"
)

// Stage handoff file names under the output directory.
const (
	CorrectedFile    = "corrected_biomass.csv"
	YoungDetailFile  = "young_numbers.csv"
	GroupBiomassFile = "group_biomass.csv"
	ValidationFile   = "validation.csv"
)

// readCSV reads an entire CSV file. Rows may vary in width only when
// ragged is true.
func readCSV(path string, ragged bool) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if ragged {
		r.FieldsPerRecord = -1
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return rows, nil
}

// parseCell parses a numeric cell. Blank and NA cells report ok=false;
// anything else that fails to parse is an error.
func parseCell(s string) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "nan") {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// parseCellNaN is parseCell for parameter columns, where a missing value
// becomes NaN so the engine's parameter validation can name the field.
func parseCellNaN(s string) (float64, error) {
	v, ok, err := parseCell(s)
	if err != nil {
		return 0, err
	}
	if !ok {
		return math.NaN(), nil
	}
	return v, nil
}

// columnIndex maps header names (case-insensitive, trimmed) to positions.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FormatTable writes the aligned pairs and per-group summaries as a
// human-readable table.
func FormatTable(pairs []Pair, stats []GroupStats, w io.Writer) {
	if len(pairs) == 0 {
		fmt.Fprintln(w, "No overlapping groups between model and survey series.")
		return
	}

	fmt.Fprintf(w, "%-24s  %-6s  %14s  %14s\n", "Group", "Year", "Model BC (mt)", "Survey (mt)")
	fmt.Fprintln(w, strings.Repeat("-", 66))
	for _, p := range pairs {
		fmt.Fprintf(w, "%-24s  %-6d  %14.1f  %14.1f\n", p.Group, p.Year, p.Model, p.Survey)
	}

	fmt.Fprintf(w, "\n%-24s  %-4s  %-6s  %s\n", "Group", "N", "Corr", "Mean model/survey")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, s := range stats {
		corr := "-"
		if !math.IsNaN(s.Correlation) {
			corr = fmt.Sprintf("%.2f", s.Correlation)
		}
		fmt.Fprintf(w, "%-24s  %-4d  %-6s  %.2f\n", s.Group, s.N, corr, s.MeanRatio)
	}
}

// WriteCSV writes the aligned pairs as a flat table.
func WriteCSV(pairs []Pair, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Group", "Year", "Biomass_BC_model", "Biomass_survey"}); err != nil {
		return err
	}
	for _, p := range pairs {
		record := []string{
			p.Group,
			strconv.Itoa(p.Year),
			strconv.FormatFloat(p.Model, 'g', -1, 64),
			strconv.FormatFloat(p.Survey, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// The stages hand results to each other through flat CSV files under the
// output directory, so each stage can also be run standalone.

// WriteCorrected writes the decomposition output table.
func WriteCorrected(path string, rows []types.CorrectedBiomass) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Species", "Year", "Biomass_SA", "Biomass_0plus", "Clamped"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Species,
			strconv.Itoa(r.Year),
			formatFloat(r.BiomassSA),
			formatFloat(r.Biomass0Plus),
			strconv.FormatBool(r.Clamped),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// LoadCorrected reads the decomposition output table back for the
// redistribution stage.
func LoadCorrected(path string) ([]types.CorrectedBiomass, error) {
	rows, err := readCSV(path, false)
	if err != nil {
		return nil, fmt.Errorf("reading corrected biomass: %w", err)
	}

	idx := columnIndex(rows[0])
	for _, col := range []string{"species", "year", "biomass_sa", "biomass_0plus"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("corrected biomass %s: missing column %q", path, col)
		}
	}

	out := make([]types.CorrectedBiomass, 0, len(rows)-1)
	for i, row := range rows[1:] {
		r := types.CorrectedBiomass{Species: strings.TrimSpace(row[idx["species"]])}
		if r.Year, err = strconv.Atoi(strings.TrimSpace(row[idx["year"]])); err != nil {
			return nil, fmt.Errorf("corrected biomass %s row %d: bad year", path, i+2)
		}
		if r.BiomassSA, err = strconv.ParseFloat(strings.TrimSpace(row[idx["biomass_sa"]]), 64); err != nil {
			return nil, fmt.Errorf("corrected biomass %s row %d: Biomass_SA: %w", path, i+2, err)
		}
		if r.Biomass0Plus, err = strconv.ParseFloat(strings.TrimSpace(row[idx["biomass_0plus"]]), 64); err != nil {
			return nil, fmt.Errorf("corrected biomass %s row %d: Biomass_0plus: %w", path, i+2, err)
		}
		if c, ok := idx["clamped"]; ok {
			r.Clamped = strings.EqualFold(strings.TrimSpace(row[c]), "true")
		}
		out = append(out, r)
	}
	return out, nil
}

// WriteYoungNumbers writes the reconstructed numbers-at-age detail.
func WriteYoungNumbers(path string, rows []types.YoungNumbers) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Species", "Year", "Age", "Numbers"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Species, strconv.Itoa(r.Year), strconv.Itoa(r.Age), formatFloat(r.Numbers)}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteGroupBiomass writes the redistribution output table.
func WriteGroupBiomass(path string, rows []types.GroupBiomass) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Group", "Year", "Biomass_0plus", "Biomass_BC", "Biomass_total"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Group,
			strconv.Itoa(r.Year),
			formatFloat(r.Biomass0Plus),
			formatFloat(r.BiomassBC),
			formatFloat(r.BiomassTotal),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// LoadGroupBiomass reads the redistribution output back for the
// validation and export stages.
func LoadGroupBiomass(path string) ([]types.GroupBiomass, error) {
	rows, err := readCSV(path, false)
	if err != nil {
		return nil, fmt.Errorf("reading group biomass: %w", err)
	}

	idx := columnIndex(rows[0])
	for _, col := range []string{"group", "year", "biomass_0plus", "biomass_bc", "biomass_total"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("group biomass %s: missing column %q", path, col)
		}
	}

	out := make([]types.GroupBiomass, 0, len(rows)-1)
	for i, row := range rows[1:] {
		r := types.GroupBiomass{Group: strings.TrimSpace(row[idx["group"]])}
		if r.Year, err = strconv.Atoi(strings.TrimSpace(row[idx["year"]])); err != nil {
			return nil, fmt.Errorf("group biomass %s row %d: bad year", path, i+2)
		}
		if r.Biomass0Plus, err = strconv.ParseFloat(strings.TrimSpace(row[idx["biomass_0plus"]]), 64); err != nil {
			return nil, fmt.Errorf("group biomass %s row %d: Biomass_0plus: %w", path, i+2, err)
		}
		if r.BiomassBC, err = strconv.ParseFloat(strings.TrimSpace(row[idx["biomass_bc"]]), 64); err != nil {
			return nil, fmt.Errorf("group biomass %s row %d: Biomass_BC: %w", path, i+2, err)
		}
		if r.BiomassTotal, err = strconv.ParseFloat(strings.TrimSpace(row[idx["biomass_total"]]), 64); err != nil {
			return nil, fmt.Errorf("group biomass %s row %d: Biomass_total: %w", path, i+2, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

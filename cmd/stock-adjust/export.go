// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/stock-adjust/internal/dataset"
	"github.com/pdiddy/stock-adjust/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Emit the single-reference-year summary table",
	Long: `Export cuts the group biomass series at the reference year and writes
the {Year, Group, Biomass_total} summary table used as ecosystem-model
initial conditions. A reference year absent from the series is an error,
not an empty table.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().Int("year", 0, "reference year (overrides export.reference_year)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := exportConfig()
	if y, _ := cmd.Flags().GetInt("year"); y != 0 {
		cfg.ReferenceYear = y
	}
	if cfg.ReferenceYear == 0 {
		return fmt.Errorf("reference year required: set export.reference_year or --year")
	}

	groups, err := dataset.LoadGroupBiomass(outputPath(cfg.DataConfig, dataset.GroupBiomassFile))
	if err != nil {
		return err
	}

	rows, err := export.ReferenceYear(groups, cfg.ReferenceYear)
	if err != nil {
		return err
	}

	path := outputPath(cfg.DataConfig, fmt.Sprintf("summary_%d.csv", cfg.ReferenceYear))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary output: %w", err)
	}
	defer f.Close()
	if err := export.WriteCSV(rows, f); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d groups)\n", path, len(rows))
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/stock-adjust/internal/dataset"
	"github.com/pdiddy/stock-adjust/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compare extrapolated BC biomass against independent assessments",
	Long: `Validate aligns the extrapolated BC biomass with independently assessed
regional series by group and year and prints both side by side, with
per-group summary statistics as a reading aid. Groups without independent
data are excluded; no acceptance test is applied.

Reads output/group_biomass.csv and the survey series (CSV or SQLite
database); writes the aligned pairs to output/validation.csv.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := validationConfig()

	groups, err := dataset.LoadGroupBiomass(outputPath(cfg.DataConfig, dataset.GroupBiomassFile))
	if err != nil {
		return err
	}
	table, err := dataset.LoadGroups(inputPath(cfg.DataConfig, dataset.GroupsFile))
	if err != nil {
		return err
	}
	surveys, err := dataset.LoadSurveys(cfg.SurveyFile)
	if err != nil {
		return err
	}

	opts := validate.Options{Region: cfg.Region, Metric: cfg.Metric}
	pairs, stats, warnings := validate.Compare(groups, surveys, table.Surveys, opts)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}

	validate.FormatTable(pairs, stats, os.Stdout)

	f, err := os.Create(outputPath(cfg.DataConfig, dataset.ValidationFile))
	if err != nil {
		return fmt.Errorf("creating validation output: %w", err)
	}
	defer f.Close()
	return validate.WriteCSV(pairs, f)
}

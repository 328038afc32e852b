// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/stock-adjust/internal/agedecomp"
	"github.com/pdiddy/stock-adjust/internal/dataset"
	"github.com/pdiddy/stock-adjust/pkg/types"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose",
	Short: "Back-calculate biomass of age classes below the assessed minimum age",
	Long: `Decompose reads the assessed biomass series and the species parameter
table, builds each species' age structure from natural mortality and growth
parameters, and reconstructs the biomass of age classes younger than the
assessed minimum age. Species whose assessment already covers age 0 pass
through unchanged.

Writes the corrected series to output/corrected_biomass.csv. One species'
failure does not abort the others.`,
	RunE: runDecompose,
}

func init() {
	decomposeCmd.Flags().Bool("detail", false, "also write reconstructed numbers-at-age to young_numbers.csv")
	decomposeCmd.Flags().String("tail-policy", "", "series-end policy: exclude or clamp")

	rootCmd.AddCommand(decomposeCmd)
}

func runDecompose(cmd *cobra.Command, args []string) error {
	cfg := decompositionConfig()
	if v, _ := cmd.Flags().GetString("tail-policy"); v != "" {
		cfg.TailPolicy = types.TailPolicy(v)
	}
	if v, _ := cmd.Flags().GetBool("detail"); v {
		cfg.Detail = true
	}
	if cfg.TailPolicy != types.TailExclude && cfg.TailPolicy != types.TailClamp {
		return fmt.Errorf("unknown tail policy %q: want exclude or clamp", cfg.TailPolicy)
	}

	params, err := dataset.LoadParameters(inputPath(cfg.DataConfig, dataset.ParametersFile))
	if err != nil {
		return err
	}
	series, err := dataset.LoadBiomass(inputPath(cfg.DataConfig, dataset.BiomassFile))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	opts := agedecomp.Options{
		RecruitmentAge:          cfg.RecruitmentAge,
		RecruitmentAgeOverrides: cfg.RecruitmentAgeOverrides,
		TailPolicy:              cfg.TailPolicy,
	}
	results, summary := agedecomp.DecomposeAll(params, series, opts, os.Stdout)

	if err := dataset.WriteCorrected(outputPath(cfg.DataConfig, dataset.CorrectedFile), agedecomp.Flatten(results)); err != nil {
		return err
	}

	if cfg.Detail {
		var young []types.YoungNumbers
		for _, r := range results {
			young = append(young, r.Young...)
		}
		if err := dataset.WriteYoungNumbers(outputPath(cfg.DataConfig, dataset.YoungDetailFile), young); err != nil {
			return err
		}
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d species failed decomposition", summary.Failed)
	}
	return nil
}

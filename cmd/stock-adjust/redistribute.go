// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/stock-adjust/internal/dataset"
	"github.com/pdiddy/stock-adjust/internal/region"
)

var redistributeCmd = &cobra.Command{
	Use:   "redistribute",
	Short: "Aggregate species into functional groups and extrapolate BC biomass",
	Long: `Redistribute sums the corrected species biomass into functional groups,
computes each group's AK and BC proportions from the spatial-distribution
table (or an alternate density file where configured), and scales the
group biomass by the BC/AK ratio to estimate the unassessed-region share.

Reads output/corrected_biomass.csv and writes output/group_biomass.csv.`,
	RunE: runRedistribute,
}

func init() {
	rootCmd.AddCommand(redistributeCmd)
}

func runRedistribute(cmd *cobra.Command, args []string) error {
	cfg := spatialConfig()

	corrected, err := dataset.LoadCorrected(outputPath(cfg.DataConfig, dataset.CorrectedFile))
	if err != nil {
		return err
	}
	groups, err := dataset.LoadGroups(inputPath(cfg.DataConfig, dataset.GroupsFile))
	if err != nil {
		return err
	}
	spatial, err := dataset.LoadSpatial(inputPath(cfg.DataConfig, dataset.SpatialFile))
	if err != nil {
		return err
	}
	alternates, err := loadAlternates(cfg)
	if err != nil {
		return err
	}

	series, warnings := region.SumByGroup(corrected, groups.Species)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}

	names := make([]string, len(series))
	for i, gs := range series {
		names[i] = gs.Group
	}
	opts := region.Options{
		LifeStage:   cfg.LifeStage,
		Season:      cfg.Season,
		BCCellStart: cfg.BCCellStart,
		Alternates:  alternates,
	}
	ratios, props, warnings := region.BuildRatios(spatial, names, opts)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	for i := 0; i < len(props); i += 2 {
		ak, bc := props[i], props[i+1]
		fmt.Printf("%-24s  AK %.4f  BC %.4f  BC/AK %.4f\n",
			ak.Group, ak.Proportion, bc.Proportion, ratios[ak.Group])
	}

	rows := region.Redistribute(series, ratios)
	if err := dataset.WriteGroupBiomass(outputPath(cfg.DataConfig, dataset.GroupBiomassFile), rows); err != nil {
		return err
	}
	fmt.Printf("\n%d group-year rows written\n", len(rows))
	return nil
}

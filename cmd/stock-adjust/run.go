// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/stock-adjust/internal/agedecomp"
	"github.com/pdiddy/stock-adjust/internal/dataset"
	"github.com/pdiddy/stock-adjust/internal/export"
	"github.com/pdiddy/stock-adjust/internal/region"
	"github.com/pdiddy/stock-adjust/internal/validate"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the whole pipeline: decompose, redistribute, validate, export",
	Long: `Run executes the full correction pipeline in one pass: load the input
tables, back-calculate young-age biomass, aggregate into functional groups,
extrapolate into the BC region, compare against independent assessments,
and write the reference-year summary. All stage handoff files are written
as if the stages had been run individually.`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	decompCfg := decompositionConfig()
	spatCfg := spatialConfig()
	valCfg := validationConfig()
	expCfg := exportConfig()
	if expCfg.ReferenceYear == 0 {
		return fmt.Errorf("reference year required: set export.reference_year")
	}

	data := decompCfg.DataConfig

	params, err := dataset.LoadParameters(inputPath(data, dataset.ParametersFile))
	if err != nil {
		return err
	}
	series, err := dataset.LoadBiomass(inputPath(data, dataset.BiomassFile))
	if err != nil {
		return err
	}
	groups, err := dataset.LoadGroups(inputPath(data, dataset.GroupsFile))
	if err != nil {
		return err
	}
	spatial, err := dataset.LoadSpatial(inputPath(data, dataset.SpatialFile))
	if err != nil {
		return err
	}
	alternates, err := loadAlternates(spatCfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(data.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Age decomposition.
	opts := agedecomp.Options{
		RecruitmentAge:          decompCfg.RecruitmentAge,
		RecruitmentAgeOverrides: decompCfg.RecruitmentAgeOverrides,
		TailPolicy:              decompCfg.TailPolicy,
	}
	results, summary := agedecomp.DecomposeAll(params, series, opts, os.Stdout)
	corrected := agedecomp.Flatten(results)
	if err := dataset.WriteCorrected(outputPath(data, dataset.CorrectedFile), corrected); err != nil {
		return err
	}

	// Group aggregation and spatial redistribution.
	groupSeries, warnings := region.SumByGroup(corrected, groups.Species)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	names := make([]string, len(groupSeries))
	for i, gs := range groupSeries {
		names[i] = gs.Group
	}
	ratios, _, warnings := region.BuildRatios(spatial, names, region.Options{
		LifeStage:   spatCfg.LifeStage,
		Season:      spatCfg.Season,
		BCCellStart: spatCfg.BCCellStart,
		Alternates:  alternates,
	})
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	groupBiomass := region.Redistribute(groupSeries, ratios)
	if err := dataset.WriteGroupBiomass(outputPath(data, dataset.GroupBiomassFile), groupBiomass); err != nil {
		return err
	}

	// Validation, when a survey series is available.
	if _, err := os.Stat(valCfg.SurveyFile); err == nil {
		surveys, err := dataset.LoadSurveys(valCfg.SurveyFile)
		if err != nil {
			return err
		}
		pairs, stats, warnings := validate.Compare(groupBiomass, surveys, groups.Surveys,
			validate.Options{Region: valCfg.Region, Metric: valCfg.Metric})
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %v\n", w)
		}
		validate.FormatTable(pairs, stats, os.Stdout)

		f, err := os.Create(outputPath(data, dataset.ValidationFile))
		if err != nil {
			return fmt.Errorf("creating validation output: %w", err)
		}
		if err := validate.WriteCSV(pairs, f); err != nil {
			f.Close()
			return err
		}
		f.Close()
	} else {
		fmt.Fprintf(os.Stderr, "no survey series at %s, skipping validation\n", valCfg.SurveyFile)
	}

	// Reference-year export.
	rows, err := export.ReferenceYear(groupBiomass, expCfg.ReferenceYear)
	if err != nil {
		return err
	}
	path := outputPath(data, fmt.Sprintf("summary_%d.csv", expCfg.ReferenceYear))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary output: %w", err)
	}
	defer f.Close()
	if err := export.WriteCSV(rows, f); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d groups)\n", path, len(rows))

	if summary.HasFailures() {
		return fmt.Errorf("%d species failed decomposition", summary.Failed)
	}
	return nil
}

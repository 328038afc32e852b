// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/stock-adjust/internal/dataset"
	"github.com/pdiddy/stock-adjust/pkg/types"
)

// Defaults applied when the config file leaves a key unset.
const (
	defaultDataDir   = "data"
	defaultOutputDir = "output"

	// defaultRecruitmentAge is 100 days expressed in years.
	defaultRecruitmentAge = 100.0 / 365.0

	// Adult life stage, summer season: the distribution snapshot the
	// original workflow uses.
	defaultLifeStage = "A"
	defaultSeason    = "S3"

	defaultSurveyRegion = "BC"
)

func dataConfig() types.DataConfig {
	cfg := types.DataConfig{
		DataDir:   viper.GetString("data_dir"),
		OutputDir: viper.GetString("output_dir"),
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	return cfg
}

func decompositionConfig() types.DecompositionConfig {
	cfg := types.DecompositionConfig{
		DataConfig:     dataConfig(),
		RecruitmentAge: viper.GetFloat64("decomposition.recruitment_age"),
		TailPolicy:     types.TailPolicy(viper.GetString("decomposition.tail_policy")),
	}
	if cfg.RecruitmentAge <= 0 {
		cfg.RecruitmentAge = defaultRecruitmentAge
	}
	if cfg.TailPolicy == "" {
		cfg.TailPolicy = types.TailExclude
	}
	_ = viper.UnmarshalKey("decomposition.recruitment_age_overrides", &cfg.RecruitmentAgeOverrides)
	return cfg
}

func spatialConfig() types.SpatialConfig {
	cfg := types.SpatialConfig{
		DataConfig:  dataConfig(),
		LifeStage:   viper.GetString("spatial.life_stage"),
		Season:      viper.GetString("spatial.season"),
		BCCellStart: viper.GetInt("spatial.bc_cell_start"),
	}
	if cfg.LifeStage == "" {
		cfg.LifeStage = defaultLifeStage
	}
	if cfg.Season == "" {
		cfg.Season = defaultSeason
	}
	_ = viper.UnmarshalKey("spatial.alternate_distributions", &cfg.AlternateDistributions)
	return cfg
}

func validationConfig() types.ValidationConfig {
	cfg := types.ValidationConfig{
		DataConfig: dataConfig(),
		SurveyFile: viper.GetString("validation.survey_file"),
		Region:     viper.GetString("validation.region"),
		Metric:     viper.GetString("validation.metric"),
	}
	if cfg.SurveyFile == "" {
		cfg.SurveyFile = filepath.Join(cfg.DataDir, "surveys.csv")
	}
	if cfg.Region == "" {
		cfg.Region = defaultSurveyRegion
	}
	return cfg
}

func exportConfig() types.ExportConfig {
	return types.ExportConfig{
		DataConfig:    dataConfig(),
		ReferenceYear: viper.GetInt("export.reference_year"),
	}
}

// resolveDataPath makes a data-relative path absolute against the data
// directory, leaving absolute paths alone.
func resolveDataPath(cfg types.DataConfig, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.DataDir, path)
}

func inputPath(cfg types.DataConfig, name string) string {
	return filepath.Join(cfg.DataDir, name)
}

func outputPath(cfg types.DataConfig, name string) string {
	return filepath.Join(cfg.OutputDir, name)
}

// loadAlternates preloads the standalone density files configured for
// groups with independently sourced distributions.
func loadAlternates(cfg types.SpatialConfig) (map[string][]dataset.CellDensity, error) {
	if len(cfg.AlternateDistributions) == 0 {
		return nil, nil
	}
	out := make(map[string][]dataset.CellDensity, len(cfg.AlternateDistributions))
	for group, path := range cfg.AlternateDistributions {
		cells, err := dataset.LoadDensity(resolveDataPath(cfg.DataConfig, path))
		if err != nil {
			return nil, err
		}
		out[group] = cells
	}
	return out, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DataConfig holds shared directory settings used by every stage.
type DataConfig struct {
	// DataDir is the directory containing the input tables
	// (biomass.csv, parameters.csv, spatial.csv, groups.yaml, ...).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// OutputDir is the directory stage outputs are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// TailPolicy selects how the decomposition handles years whose young-age
// reconstruction would need observations past the end of the series.
type TailPolicy string

const (
	// TailExclude drops affected years from the corrected output and
	// reports them in the run summary.
	TailExclude TailPolicy = "exclude"

	// TailClamp substitutes the final observed year's minimum-age numbers
	// for missing future observations. A documented approximation;
	// affected rows are marked Clamped.
	TailClamp TailPolicy = "clamp"
)

// DecompositionConfig holds settings for the age-decomposition stage.
type DecompositionConfig struct {
	DataConfig `yaml:",inline"`

	// RecruitmentAge is the age (fractional years, e.g. recruitment
	// duration / 365) substituted for age 0 in the growth equation.
	// Applied uniformly unless overridden per species.
	RecruitmentAge float64 `json:"recruitment_age" yaml:"recruitment_age"`

	// RecruitmentAgeOverrides maps species to a per-species recruitment
	// age, taking precedence over RecruitmentAge.
	RecruitmentAgeOverrides map[string]float64 `json:"recruitment_age_overrides,omitempty" yaml:"recruitment_age_overrides,omitempty"`

	// TailPolicy selects the series-end policy: exclude (default) or clamp.
	TailPolicy TailPolicy `json:"tail_policy" yaml:"tail_policy"`

	// Detail enables the per-species young-numbers-at-age detail output.
	Detail bool `json:"detail" yaml:"detail"`
}

// SpatialConfig holds settings for the spatial-redistribution stage.
type SpatialConfig struct {
	DataConfig `yaml:",inline"`

	// LifeStage and Season select the distribution snapshot column
	// (<Group>_<LifeStage>_<Season>) used for regional proportions.
	// Defaults: adult stage, summer season.
	LifeStage string `json:"life_stage" yaml:"life_stage"`
	Season    string `json:"season" yaml:"season"`

	// BCCellStart is the first spatial cell index belonging to the BC
	// region; cells below it are AK.
	BCCellStart int `json:"bc_cell_start" yaml:"bc_cell_start"`

	// AlternateDistributions maps groups to standalone density files
	// used instead of the shared spatial table (e.g. the halibut group,
	// whose distribution comes from an independent source).
	AlternateDistributions map[string]string `json:"alternate_distributions,omitempty" yaml:"alternate_distributions,omitempty"`
}

// ValidationConfig holds settings for the validation stage.
type ValidationConfig struct {
	DataConfig `yaml:",inline"`

	// SurveyFile is the independent regional assessment series, either a
	// CSV file or a survey SQLite database (.db).
	SurveyFile string `json:"survey_file" yaml:"survey_file"`

	// Region filters survey records to the region of interest (default BC).
	Region string `json:"region" yaml:"region"`

	// Metric filters survey records to a single biomass time-series
	// metric (e.g. "total_biomass").
	Metric string `json:"metric" yaml:"metric"`
}

// ExportConfig holds settings for the reference-year export stage.
type ExportConfig struct {
	DataConfig `yaml:",inline"`

	// ReferenceYear is the single year the summary table is cut at.
	ReferenceYear int `json:"reference_year" yaml:"reference_year"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Decomposition DecompositionConfig `json:"decomposition" yaml:"decomposition"`
	Spatial       SpatialConfig       `json:"spatial" yaml:"spatial"`
	Validation    ValidationConfig    `json:"validation" yaml:"validation"`
	Export        ExportConfig        `json:"export" yaml:"export"`
}

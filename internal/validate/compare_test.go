// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

func modelFixture() []types.GroupBiomass {
	return []types.GroupBiomass{
		{Group: "Cod", Year: 1990, BiomassBC: 100},
		{Group: "Cod", Year: 1991, BiomassBC: 200},
		{Group: "Cod", Year: 1992, BiomassBC: 300},
		{Group: "Flatfish_deep", Year: 1990, BiomassBC: 50},
	}
}

func surveyFixture() []types.SurveyRecord {
	return []types.SurveyRecord{
		{Year: 1990, CommonName: "pacific cod", Region: "BC", Metric: "total_biomass", Biomass: 110},
		{Year: 1991, CommonName: "pacific cod", Region: "BC", Metric: "total_biomass", Biomass: 220},
		{Year: 1992, CommonName: "pacific cod", Region: "BC", Metric: "total_biomass", Biomass: 330},
		{Year: 1990, CommonName: "pacific cod", Region: "AK", Metric: "total_biomass", Biomass: 9999},
		{Year: 1990, CommonName: "pacific cod", Region: "BC", Metric: "spawning_biomass", Biomass: 9999},
		{Year: 1990, CommonName: "sixgill shark", Region: "BC", Metric: "total_biomass", Biomass: 5},
	}
}

func TestCompareAlignsInnerJoin(t *testing.T) {
	mapping := map[string]string{"pacific cod": "Cod"}
	opts := Options{Region: "BC", Metric: "total_biomass"}

	pairs, stats, warnings := Compare(modelFixture(), surveyFixture(), mapping, opts)

	// Flatfish_deep has no survey data and is silently excluded; the
	// shark has no mapping and produces a warning.
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
	var uge *types.UnmappedGroupError
	if !errors.As(warnings[0], &uge) || uge.Name != "sixgill shark" {
		t.Errorf("warning = %v, want UnmappedGroupError for sixgill shark", warnings[0])
	}

	if len(pairs) != 3 {
		t.Fatalf("len(pairs) = %d, want 3", len(pairs))
	}
	for i, want := range []Pair{
		{Group: "Cod", Year: 1990, Model: 100, Survey: 110},
		{Group: "Cod", Year: 1991, Model: 200, Survey: 220},
		{Group: "Cod", Year: 1992, Model: 300, Survey: 330},
	} {
		if pairs[i] != want {
			t.Errorf("pairs[%d] = %+v, want %+v", i, pairs[i], want)
		}
	}

	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}
	gs := stats[0]
	if gs.N != 3 {
		t.Errorf("N = %d, want 3", gs.N)
	}
	// Model and survey are proportional, so correlation is exactly 1
	// and each ratio is 1/1.1.
	if math.Abs(gs.Correlation-1) > 1e-12 {
		t.Errorf("Correlation = %v, want 1", gs.Correlation)
	}
	if math.Abs(gs.MeanRatio-1/1.1) > 1e-12 {
		t.Errorf("MeanRatio = %v, want %v", gs.MeanRatio, 1/1.1)
	}
}

func TestCompareSumsCommonNamesWithinGroup(t *testing.T) {
	model := []types.GroupBiomass{{Group: "Flatfish_deep", Year: 1990, BiomassBC: 100}}
	surveys := []types.SurveyRecord{
		{Year: 1990, CommonName: "dover sole", Region: "BC", Biomass: 30},
		{Year: 1990, CommonName: "rex sole", Region: "BC", Biomass: 20},
	}
	mapping := map[string]string{"dover sole": "Flatfish_deep", "rex sole": "Flatfish_deep"}

	pairs, _, _ := Compare(model, surveys, mapping, Options{Region: "BC"})

	if len(pairs) != 1 {
		t.Fatalf("len(pairs) = %d, want 1", len(pairs))
	}
	if pairs[0].Survey != 50 {
		t.Errorf("Survey = %v, want summed 50", pairs[0].Survey)
	}
}

func TestCompareSingleYearHasNoCorrelation(t *testing.T) {
	model := []types.GroupBiomass{{Group: "Cod", Year: 1990, BiomassBC: 100}}
	surveys := []types.SurveyRecord{
		{Year: 1990, CommonName: "pacific cod", Region: "BC", Biomass: 90},
	}

	_, stats, _ := Compare(model, surveys, map[string]string{"pacific cod": "Cod"}, Options{Region: "BC"})

	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}
	if !math.IsNaN(stats[0].Correlation) {
		t.Errorf("Correlation = %v, want NaN for a single pair", stats[0].Correlation)
	}
}

func TestFormatTable(t *testing.T) {
	pairs := []Pair{{Group: "Cod", Year: 1990, Model: 100, Survey: 110}}
	stats := []GroupStats{{Group: "Cod", N: 1, Correlation: math.NaN(), MeanRatio: 0.91}}

	var buf bytes.Buffer
	FormatTable(pairs, stats, &buf)

	out := buf.String()
	if !strings.Contains(out, "Cod") || !strings.Contains(out, "1990") {
		t.Errorf("table missing pair row:\n%s", out)
	}
	// NaN correlation renders as a dash.
	if !strings.Contains(out, "-") {
		t.Errorf("table missing dash for undefined correlation:\n%s", out)
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, nil, &buf)
	if !strings.Contains(buf.String(), "No overlapping groups") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	pairs := []Pair{{Group: "Cod", Year: 1990, Model: 125, Survey: 110.5}}

	var buf bytes.Buffer
	if err := WriteCSV(pairs, &buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "Group,Year,Biomass_BC_model,Biomass_survey\nCod,1990,125,110.5\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

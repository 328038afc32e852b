// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

func TestLoadSurveysCSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "surveys.csv",
		"year,common_name,region,metric,biomass\n"+
			"1990,pacific cod,BC,total_biomass,4200\n"+
			"1991,pacific cod,BC,total_biomass,\n"+
			"1990,english sole,BC,total_biomass,900.5\n")

	records, err := LoadSurveys(path)
	require.NoError(t, err)

	// The blank-biomass row is dropped.
	require.Len(t, records, 2)
	assert.Equal(t, types.SurveyRecord{
		Year: 1990, CommonName: "pacific cod", Region: "BC",
		Metric: "total_biomass", Biomass: 4200,
	}, records[0])
}

func TestLoadSurveysCSVMissingColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "surveys.csv", "year,biomass\n1990,5\n")

	_, err := LoadSurveys(path)
	assert.ErrorContains(t, err, `missing column "common_name"`)
}

func TestLoadSurveysSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surveys.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE indices (
		year INTEGER, common_name TEXT, region TEXT, metric TEXT, biomass REAL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO indices VALUES
		(1991, 'pacific cod', 'BC', 'total_biomass', 4400),
		(1990, 'pacific cod', 'BC', 'total_biomass', 4200),
		(1990, 'english sole', 'AK', 'total_biomass', NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	records, err := LoadSurveys(path)
	require.NoError(t, err)

	// NULL biomass dropped; ordered by common name then year.
	require.Len(t, records, 2)
	assert.Equal(t, 1990, records[0].Year)
	assert.Equal(t, 1991, records[1].Year)
	assert.Equal(t, 4400.0, records[1].Biomass)
}

func TestHandoffRoundTripCorrected(t *testing.T) {
	rows := []types.CorrectedBiomass{
		{Species: "Pacific cod", Year: 1990, BiomassSA: 1000, Biomass0Plus: 1042.25},
		{Species: "Pacific cod", Year: 1991, BiomassSA: 1100, Biomass0Plus: 1150.5, Clamped: true},
	}
	path := filepath.Join(t.TempDir(), CorrectedFile)

	require.NoError(t, WriteCorrected(path, rows))
	got, err := LoadCorrected(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestHandoffRoundTripGroupBiomass(t *testing.T) {
	rows := []types.GroupBiomass{
		{Group: "Cod", Year: 1990, Biomass0Plus: 500, BiomassBC: 125, BiomassTotal: 625},
	}
	path := filepath.Join(t.TempDir(), GroupBiomassFile)

	require.NoError(t, WriteGroupBiomass(path, rows))
	got, err := LoadGroupBiomass(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

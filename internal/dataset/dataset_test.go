// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBiomass(t *testing.T) {
	path := writeFile(t, t.TempDir(), "biomass.csv",
		"Year,Pacific cod,Arrowtooth flounder\n"+
			"1990,1000,250.5\n"+
			"1991,1100,NA\n"+
			"1992,,300\n")

	series, err := LoadBiomass(path)
	require.NoError(t, err)
	require.Len(t, series, 2)

	// Sorted by species.
	arrowtooth, cod := series[0], series[1]
	assert.Equal(t, "Arrowtooth flounder", arrowtooth.Species)
	assert.Equal(t, map[int]float64{1990: 250.5, 1992: 300}, arrowtooth.Biomass)
	assert.Equal(t, []int{1990, 1992}, arrowtooth.Years())

	assert.Equal(t, map[int]float64{1990: 1000, 1991: 1100}, cod.Biomass)
	last, ok := cod.LastYear()
	require.True(t, ok)
	assert.Equal(t, 1991, last)
}

func TestLoadBiomassRejectsBadHeader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "biomass.csv", "Species,1990\nCod,10\n")

	_, err := LoadBiomass(path)
	assert.ErrorContains(t, err, "first column must be Year")
}

func TestLoadParameters(t *testing.T) {
	path := writeFile(t, t.TempDir(), "parameters.csv",
		"Species,M,Minage,Maxage,k,Linf,a,b\n"+
			"Pacific cod,0.38,1,12,0.17,119.7,0.0073,3.1306\n"+
			"Pacific herring,0.45,,9,0.26,27.0,0.0055,3.15\n"+
			"Shortraker rockfish,,3,120,,,,\n")

	params, err := LoadParameters(path)
	require.NoError(t, err)
	require.Len(t, params, 3)

	cod := params[0]
	assert.Equal(t, "Pacific cod", cod.Species)
	assert.Equal(t, 0.38, cod.M)
	assert.Equal(t, 1, cod.MinAge)
	assert.Equal(t, 12, cod.MaxAge)
	assert.Empty(t, cod.MissingFields())

	// Blank Minage means the assessment covers all ages.
	assert.Equal(t, 0, params[1].MinAge)

	// Blank numeric cells surface through MissingFields, not load errors.
	rockfish := params[2]
	assert.True(t, math.IsNaN(rockfish.M))
	assert.Equal(t, []string{"M", "k", "Linf", "a", "b"}, rockfish.MissingFields())
}

func TestLoadParametersMissingColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "parameters.csv", "Species,M\nCod,0.3\n")

	_, err := LoadParameters(path)
	assert.ErrorContains(t, err, `missing column "minage"`)
}

func TestLoadGroups(t *testing.T) {
	path := writeFile(t, t.TempDir(), "groups.yaml", `
groups:
  - Cod
  - Flatfish_deep
species:
  Pacific cod: Cod
  Arrowtooth flounder: Flatfish_deep
surveys:
  pacific cod: Cod
`)

	table, err := LoadGroups(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cod", "Flatfish_deep"}, table.Groups)
	assert.Equal(t, "Cod", table.Species["Pacific cod"])
	assert.Equal(t, "Cod", table.Surveys["pacific cod"])
}

func TestLoadGroupsRejectsUnknownTarget(t *testing.T) {
	path := writeFile(t, t.TempDir(), "groups.yaml", `
groups:
  - Cod
species:
  Walleye pollock: Pollock
`)

	_, err := LoadGroups(path)
	assert.ErrorContains(t, err, "undefined groups")
	assert.ErrorContains(t, err, "Walleye pollock -> Pollock")
}

func TestLoadSpatial(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spatial.csv",
		"cell,Cod_A_S3,Cod_J_S1\n"+
			"0,0.5,0.2\n"+
			"1,0.3,\n"+
			"10,0.2,0.8\n")

	tbl, err := LoadSpatial(path)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 10}, tbl.Cells)

	col, ok := tbl.Column("Cod", "A", "S3")
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 0.3, 0.2}, col)

	// Blank density reads as zero.
	col, ok = tbl.Column("Cod", "J", "S1")
	require.True(t, ok)
	assert.Equal(t, []float64{0.2, 0, 0.8}, col)

	_, ok = tbl.Column("Halibut", "A", "S3")
	assert.False(t, ok)
}

func TestLoadDensity(t *testing.T) {
	path := writeFile(t, t.TempDir(), "halibut.csv",
		"cell,density\n0,0.6\n10,0.3\n")

	cells, err := LoadDensity(path)
	require.NoError(t, err)
	assert.Equal(t, []CellDensity{{Cell: 0, Density: 0.6}, {Cell: 10, Density: 0.3}}, cells)
}

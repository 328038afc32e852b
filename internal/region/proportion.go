// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package region

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/pdiddy/stock-adjust/internal/dataset"
	"github.com/pdiddy/stock-adjust/pkg/types"
)

// splitByRegion partitions a density column into AK and BC values by the
// cell-index threshold: cells below bcCellStart belong to AK.
func splitByRegion(cells []int, density []float64, bcCellStart int) (ak, bc []float64) {
	for i, cell := range cells {
		if cell < bcCellStart {
			ak = append(ak, density[i])
		} else {
			bc = append(bc, density[i])
		}
	}
	return ak, bc
}

// proportions sums a density column within each region's cell set.
func proportions(group string, cells []int, density []float64, bcCellStart int) (types.RegionalProportion, types.RegionalProportion) {
	akCells, bcCells := splitByRegion(cells, density, bcCellStart)
	return types.RegionalProportion{Group: group, Region: types.RegionAK, Proportion: floats.Sum(akCells)},
		types.RegionalProportion{Group: group, Region: types.RegionBC, Proportion: floats.Sum(bcCells)}
}

// FromTable computes a group's AK and BC proportions from the shared
// spatial table, using the distribution snapshot selected by life stage
// and season.
func FromTable(t *dataset.SpatialTable, group, stage, season string, bcCellStart int) (types.RegionalProportion, types.RegionalProportion, error) {
	density, ok := t.Column(group, stage, season)
	if !ok {
		return types.RegionalProportion{}, types.RegionalProportion{},
			fmt.Errorf("group %s: no spatial column %s_%s_%s", group, group, stage, season)
	}
	ak, bc := proportions(group, t.Cells, density, bcCellStart)
	return ak, bc, nil
}

// FromDensity computes a group's AK and BC proportions from a standalone
// density file, with the same region summation as the shared table.
func FromDensity(group string, cells []dataset.CellDensity, bcCellStart int) (types.RegionalProportion, types.RegionalProportion) {
	idx := make([]int, len(cells))
	density := make([]float64, len(cells))
	for i, c := range cells {
		idx[i] = c.Cell
		density[i] = c.Density
	}
	return proportions(group, idx, density, bcCellStart)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

func fixture() []types.GroupBiomass {
	return []types.GroupBiomass{
		{Group: "Flatfish_deep", Year: 1990, BiomassTotal: 625},
		{Group: "Cod", Year: 1990, BiomassTotal: 5500},
		{Group: "Cod", Year: 1991, BiomassTotal: 6000},
	}
}

func TestReferenceYearFiltersAndSorts(t *testing.T) {
	rows, err := ReferenceYear(fixture(), 1990)
	if err != nil {
		t.Fatalf("ReferenceYear() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Group != "Cod" || rows[1].Group != "Flatfish_deep" {
		t.Errorf("groups = %s, %s, want Cod, Flatfish_deep", rows[0].Group, rows[1].Group)
	}
	for _, r := range rows {
		if r.Year != 1990 {
			t.Errorf("row year = %d, want 1990", r.Year)
		}
	}
}

func TestReferenceYearMissing(t *testing.T) {
	_, err := ReferenceYear(fixture(), 1889)

	var mre *types.MissingReferenceYearError
	if !errors.As(err, &mre) {
		t.Fatalf("error = %v, want *types.MissingReferenceYearError", err)
	}
	if mre.Year != 1889 {
		t.Errorf("Year = %d, want 1889", mre.Year)
	}
}

func TestWriteCSV(t *testing.T) {
	rows := []types.GroupBiomass{
		{Group: "Cod", Year: 1990, BiomassTotal: 5500},
		{Group: "Flatfish_deep", Year: 1990, BiomassTotal: 625.5},
	}

	var buf bytes.Buffer
	if err := WriteCSV(rows, &buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "Year,Group,Biomass_total\n1990,Cod,5500\n1990,Flatfish_deep,625.5\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

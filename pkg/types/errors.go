// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// MissingParameterError reports a species whose parameter record lacks one
// or more fields required for back-calculation. The species is skipped;
// other species proceed.
type MissingParameterError struct {
	Species string
	Fields  []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("species %s: missing or invalid parameters: %s",
		e.Species, strings.Join(e.Fields, ", "))
}

// InsufficientHistoryError reports a year whose young-age reconstruction
// needs observations past the end of the biomass series. Under the
// default tail policy the year is dropped from the corrected output.
type InsufficientHistoryError struct {
	Species string
	Year    int

	// NeededThrough is the latest year the reconstruction would read.
	NeededThrough int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("species %s: year %d needs observations through %d",
		e.Species, e.Year, e.NeededThrough)
}

// UnmappedGroupError reports a species or survey common name with no
// entry in the group mapping. The record is excluded from aggregation;
// the run continues.
type UnmappedGroupError struct {
	Name string
}

func (e *UnmappedGroupError) Error() string {
	return fmt.Sprintf("%s: no functional-group mapping", e.Name)
}

// MissingReferenceYearError reports that the export's reference year is
// absent from the group biomass series. Fatal.
type MissingReferenceYearError struct {
	Year int
}

func (e *MissingReferenceYearError) Error() string {
	return fmt.Sprintf("reference year %d not present in group biomass series", e.Year)
}

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Decompose runs the age-decomposition stage against the data directory.
func Decompose() error {
	return sh.RunV("go", "run", cmdPkg, "decompose")
}

// Redistribute runs the group aggregation and BC extrapolation stage.
func Redistribute() error {
	mg.Deps(Decompose)
	return sh.RunV("go", "run", cmdPkg, "redistribute")
}

// Validate compares the extrapolated BC biomass against survey series.
func Validate() error {
	mg.Deps(Redistribute)
	return sh.RunV("go", "run", cmdPkg, "validate")
}

// Pipeline runs the whole correction pipeline in one pass.
func Pipeline() error {
	return sh.RunV("go", "run", cmdPkg, "run")
}

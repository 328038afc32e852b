// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agedecomp

import (
	"math"
	"testing"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

func testParams() types.SpeciesParameters {
	return types.SpeciesParameters{
		Species:       "Pacific cod",
		M:             0.2,
		MinAge:        3,
		MaxAge:        10,
		K:             0.3,
		Linf:          50,
		LengthWeightA: 0.01,
		LengthWeightB: 3.0,
	}
}

func TestBuildProfileProportionsSumToOne(t *testing.T) {
	profile := BuildProfile(testParams(), 0.5)

	var sum float64
	for _, p := range profile.Proportions {
		sum += p
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("proportions sum = %v, want 1", sum)
	}
	if len(profile.Proportions) != 11 {
		t.Errorf("len(Proportions) = %d, want 11 (ages 0..10)", len(profile.Proportions))
	}
}

func TestBuildProfileProportionsDecayWithAge(t *testing.T) {
	profile := BuildProfile(testParams(), 0.5)

	for age := 1; age < len(profile.Proportions); age++ {
		if profile.Proportions[age] >= profile.Proportions[age-1] {
			t.Errorf("proportion(%d) = %v >= proportion(%d) = %v, want strict decay",
				age, profile.Proportions[age], age-1, profile.Proportions[age-1])
		}
	}

	// Consecutive ages differ by exactly exp(-M).
	ratio := profile.Proportions[5] / profile.Proportions[4]
	if math.Abs(ratio-math.Exp(-0.2)) > 1e-12 {
		t.Errorf("proportion ratio = %v, want exp(-M) = %v", ratio, math.Exp(-0.2))
	}
}

func TestBuildProfileZeroMortalityIsUniform(t *testing.T) {
	p := testParams()
	p.M = 0
	profile := BuildProfile(p, 0.5)

	want := 1.0 / float64(p.MaxAge+1)
	for age, got := range profile.Proportions {
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("proportion(%d) = %v, want uniform %v", age, got, want)
		}
	}
}

func TestBuildProfileWeightsNonDecreasing(t *testing.T) {
	profile := BuildProfile(testParams(), 0.5)

	for age := 1; age < len(profile.Weights); age++ {
		if profile.Weights[age] < profile.Weights[age-1] {
			t.Errorf("weight(%d) = %v < weight(%d) = %v, want non-decreasing",
				age, profile.Weights[age], age-1, profile.Weights[age-1])
		}
	}
}

func TestBuildProfileAgeZeroUsesRecruitmentAge(t *testing.T) {
	p := testParams()
	profile := BuildProfile(p, 0.5)

	wantLength := p.Linf * (1 - math.Exp(-p.K*0.5))
	if math.Abs(profile.Lengths[0]-wantLength) > 1e-12 {
		t.Errorf("length(0) = %v, want %v (growth curve at recruitment age)", profile.Lengths[0], wantLength)
	}
	if profile.Lengths[0] <= 0 {
		t.Error("length(0) should be positive")
	}

	wantWeight := p.LengthWeightA * math.Pow(wantLength, p.LengthWeightB)
	if math.Abs(profile.Weights[0]-wantWeight) > 1e-12 {
		t.Errorf("weight(0) = %v, want %v", profile.Weights[0], wantWeight)
	}
}

func TestAssessedWeightCoversAssessedAgesOnly(t *testing.T) {
	p := testParams()
	profile := BuildProfile(p, 0.5)

	var want float64
	for age := p.MinAge; age <= p.MaxAge; age++ {
		want += profile.Proportions[age] * profile.Weights[age]
	}
	if got := profile.AssessedWeight(p.MinAge); math.Abs(got-want) > 1e-12 {
		t.Errorf("AssessedWeight(%d) = %v, want %v", p.MinAge, got, want)
	}

	// The full age range adds positive terms on top of the assessed subset.
	if profile.AssessedWeight(0) <= profile.AssessedWeight(p.MinAge) {
		t.Error("AssessedWeight(0) should exceed AssessedWeight(MinAge)")
	}
}

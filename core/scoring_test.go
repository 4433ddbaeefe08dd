package core

import (
	"math"
	"testing"

	"github.com/powertrackhq/powertrack/schema"
	"github.com/stretchr/testify/assert"
)

// TestScoringZeroGuards ensures degenerate inputs score exactly 0.0.
func TestScoringZeroGuards(t *testing.T) {
	funcs := map[string]func(float64, float64, schema.Gender) float64{
		"dots":         Dots,
		"ipfgl":        IPFGL,
		"glossbrenner": Glossbrenner,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			assert.Zero(t, fn(0, 93, schema.Male))
			assert.Zero(t, fn(600, 0, schema.Male))
			assert.Zero(t, fn(600, 93, schema.Gender("ALIEN")))
			assert.Zero(t, fn(600, 93, schema.Unspecified))
		})
	}
}

// TestScoringPositiveFinite checks valid inputs yield positive finite scores
// and that points are exactly proportional to total.
func TestScoringPositiveFinite(t *testing.T) {
	tests := []struct {
		name       string
		totalKg    float64
		bodyweight float64
		gender     schema.Gender
	}{
		{"male middleweight", 600, 83, schema.Male},
		{"male superheavy", 900, 155, schema.Male},
		{"female lightweight", 300, 52, schema.Female},
		{"female heavyweight", 500, 110, schema.Female},
	}

	funcs := map[string]func(float64, float64, schema.Gender) float64{
		"dots":         Dots,
		"ipfgl":        IPFGL,
		"glossbrenner": Glossbrenner,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, fn := range funcs {
				single := fn(tt.totalKg, tt.bodyweight, tt.gender)
				double := fn(tt.totalKg*2, tt.bodyweight, tt.gender)
				assert.Greater(t, single, 0.0, name)
				assert.False(t, math.IsInf(single, 0), name)
				// Proportionality is exact up to the 2-decimal rounding.
				assert.InDelta(t, single*2, double, 0.011, name)
			}
		})
	}
}

// TestDotsKnownValues pins DOTS against hand-computed coefficients.
func TestDotsKnownValues(t *testing.T) {
	// 500 / P(bw) with the male table at 100 kg bodyweight.
	p := -307.75076 +
		24.0900756*100 +
		-0.1918759221*100*100 +
		7.391293e-4*math.Pow(100, 3) +
		-1.093e-6*math.Pow(100, 4)
	expected := schema.Round2(700 * 500 / p)
	assert.InDelta(t, expected, Dots(700, 100, schema.Male), 1e-9)
}

// TestIPFGLKnownValues pins IPF GL against the closed-form denominator.
func TestIPFGLKnownValues(t *testing.T) {
	denom := 610.32796 - 1045.59282*math.Exp(-0.03048*63)
	expected := schema.Round2(400 * 100 / denom)
	assert.InDelta(t, expected, IPFGL(400, 63, schema.Female), 1e-9)
}

// TestGlossbrennerCutoffs verifies the piecewise switch is continuous enough
// to not blow up near the heavyweight cutoffs.
func TestGlossbrennerCutoffs(t *testing.T) {
	below := Glossbrenner(800, 153.0, schema.Male)
	above := Glossbrenner(800, 153.1, schema.Male)
	assert.Greater(t, below, 0.0)
	assert.Greater(t, above, 0.0)
	assert.InDelta(t, below, above, 2.0)

	belowF := Glossbrenner(450, 106.2, schema.Female)
	aboveF := Glossbrenner(450, 106.4, schema.Female)
	assert.Greater(t, belowF, 0.0)
	assert.Greater(t, aboveF, 0.0)
	assert.InDelta(t, belowF, aboveF, 2.0)
}

// TestAllPoints checks the convenience wrapper agrees with the formulas.
func TestAllPoints(t *testing.T) {
	dots, ipf, gloss := AllPoints(600, 83, schema.Male)
	assert.Equal(t, Dots(600, 83, schema.Male), dots)
	assert.Equal(t, IPFGL(600, 83, schema.Male), ipf)
	assert.Equal(t, Glossbrenner(600, 83, schema.Male), gloss)
}

// BenchmarkDots benchmarks the hottest scoring path.
func BenchmarkDots(b *testing.B) {
	for b.Loop() {
		Dots(600, 83, schema.Male)
	}
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeGender covers abbreviation mapping and pass-through behavior.
func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Gender
	}{
		{"female full", "FEMALE", Female},
		{"female short", "f", Female},
		{"female fem", "Fem", Female},
		{"male full", "male", Male},
		{"male short", "M", Male},
		{"empty", "", Unspecified},
		{"whitespace", "   ", Unspecified},
		{"unknown passes through uppercased", "mx", Gender("MX")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeGender(tt.input))
		})
	}
}

// TestNormalizeAttemptResult pins the three-value result vocabulary.
func TestNormalizeAttemptResult(t *testing.T) {
	assert.Equal(t, GoodLift, NormalizeAttemptResult("good"))
	assert.Equal(t, GoodLift, NormalizeAttemptResult(" GOOD "))
	assert.Equal(t, BadLift, NormalizeAttemptResult("bad"))
	assert.Equal(t, BadLift, NormalizeAttemptResult("miss"))
	assert.Equal(t, PendingLift, NormalizeAttemptResult(""))
	assert.Equal(t, PendingLift, NormalizeAttemptResult("jury-review"))
}

// TestWeightClassBucket checks bucketing at and around class boundaries.
func TestWeightClassBucket(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		gender   Gender
		expected string
	}{
		{"male lightest", 55.0, Male, "59"},
		{"male exact boundary", 83.0, Male, "83"},
		{"male just over boundary", 83.01, Male, "93"},
		{"male superheavy", 140.0, Male, "120+"},
		{"female lightest", 46.0, Female, "47"},
		{"female exact boundary", 63.0, Female, "63"},
		{"female superheavy", 90.0, Female, "84+"},
		{"unspecified uses female buckets", 60.0, Unspecified, "63"},
		{"zero weight unknown", 0, Male, ""},
		{"negative weight unknown", -5, Female, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeightClassBucket(tt.weight, tt.gender))
		})
	}
}

// TestPoundsToKg pins the conversion constant and 3-decimal rounding.
func TestPoundsToKg(t *testing.T) {
	assert.InDelta(t, 99.790, PoundsToKg(220), 0.0005)
	assert.InDelta(t, 45.359, PoundsToKg(100), 0.0005)
	assert.Zero(t, PoundsToKg(0))
}

// TestDisplayWeight verifies display conversion leaves kg untouched.
func TestDisplayWeight(t *testing.T) {
	assert.InDelta(t, 100.0, DisplayWeight(100, KGUnits), 1e-9)
	assert.InDelta(t, 220.462, DisplayWeight(100, LBSUnits), 0.001)
}

// TestParseFloatOrZero checks silent-default numeric coercion.
func TestParseFloatOrZero(t *testing.T) {
	assert.Equal(t, 102.5, ParseFloatOrZero(" 102.5 "))
	assert.Equal(t, 0.0, ParseFloatOrZero("DNF"))
	assert.Equal(t, 0.0, ParseFloatOrZero(""))
	assert.Equal(t, 0.0, ParseFloatOrZero("NaN"))
}

// TestTitleCase checks equipment labels render like display values.
func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Raw", TitleCase("RAW"))
	assert.Equal(t, "Raw With Wraps", TitleCase("raw with WRAPS"))
	assert.Equal(t, "", TitleCase(""))
}

// TestPercentileOf pins searchsorted left/right semantics on duplicates.
func TestPercentileOf(t *testing.T) {
	stats := &LiftStats{
		Count:        5,
		Distribution: []float64{100, 110, 120, 130, 140},
	}

	t.Run("mid value", func(t *testing.T) {
		pct, atOrAbove := stats.PercentileOf(120)
		assert.InDelta(t, 60.0, pct, 1e-9) // 3 of 5 are <= 120
		assert.Equal(t, 3, atOrAbove)      // 120, 130, 140
	})

	t.Run("below all", func(t *testing.T) {
		pct, atOrAbove := stats.PercentileOf(90)
		assert.Zero(t, pct)
		assert.Equal(t, 5, atOrAbove)
	})

	t.Run("above all", func(t *testing.T) {
		pct, atOrAbove := stats.PercentileOf(200)
		assert.InDelta(t, 100.0, pct, 1e-9)
		assert.Zero(t, atOrAbove)
	})

	t.Run("empty distribution", func(t *testing.T) {
		empty := &LiftStats{}
		pct, atOrAbove := empty.PercentileOf(100)
		assert.Zero(t, pct)
		assert.Zero(t, atOrAbove)
	})

	t.Run("duplicates", func(t *testing.T) {
		dup := &LiftStats{Count: 4, Distribution: []float64{100, 120, 120, 140}}
		pct, atOrAbove := dup.PercentileOf(120)
		assert.InDelta(t, 75.0, pct, 1e-9)
		assert.Equal(t, 3, atOrAbove)
	})
}

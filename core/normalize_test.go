package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powertrackhq/powertrack/schema"
)

func TestNormalizeComputesMissingColumns(t *testing.T) {
	records := []schema.LifterRecord{
		{
			Name:           "Alex Stone",
			Gender:         "m",
			BodyweightKg:   92.5,
			BestSquatKg:    210,
			BestBenchKg:    140,
			BestDeadliftKg: 250,
		},
	}

	out := Normalize(records)
	require.Len(t, out, 1)

	r := out[0]
	assert.Equal(t, schema.Male, r.Gender)
	assert.InDelta(t, 600, r.TotalKg, 1e-9)
	assert.Greater(t, r.DotsPoints, 0.0)
	assert.Greater(t, r.IPFPoints, 0.0)
	assert.Greater(t, r.GlossbrennerPoints, 0.0)
	assert.Equal(t, 1, r.Place)
}

func TestNormalizePreservesProvidedValues(t *testing.T) {
	records := []schema.LifterRecord{
		{Name: "A", Gender: schema.Male, BodyweightKg: 90, TotalKg: 600, DotsPoints: 123.45, Place: 1},
		{Name: "B", Gender: schema.Male, BodyweightKg: 95, TotalKg: 550, DotsPoints: 111.11, Place: 2},
	}

	out := Normalize(records)
	assert.InDelta(t, 123.45, out[0].DotsPoints, 1e-9)
	assert.InDelta(t, 600, out[0].TotalKg, 1e-9)
	// All places present, so the provided ordering survives
	assert.Equal(t, 1, out[0].Place)
	assert.Equal(t, 2, out[1].Place)
}

func TestNormalizeRecomputesAllPlacesWhenOneMissing(t *testing.T) {
	records := []schema.LifterRecord{
		{Name: "A", Gender: schema.Male, BodyweightKg: 90, TotalKg: 550, Place: 1},
		{Name: "B", Gender: schema.Male, BodyweightKg: 95, TotalKg: 600}, // no place
	}

	out := Normalize(records)
	byName := map[string]schema.LifterRecord{}
	for _, r := range out {
		byName[r.Name] = r
	}
	assert.Equal(t, 1, byName["B"].Place)
	assert.Equal(t, 2, byName["A"].Place)
}

func TestNormalizeScrubsNonFiniteValues(t *testing.T) {
	records := []schema.LifterRecord{
		{
			Name:         "Messy",
			Gender:       schema.Female,
			BodyweightKg: math.NaN(),
			TotalKg:      math.Inf(1),
			Squat:        [3]schema.Attempt{{WeightKg: math.NaN(), Result: "GOOD"}},
		},
	}

	out := Normalize(records)
	r := out[0]
	assert.Zero(t, r.BodyweightKg)
	assert.Zero(t, r.TotalKg)
	assert.Zero(t, r.Squat[0].WeightKg)
	assert.Equal(t, schema.GoodLift, r.Squat[0].Result)
	// Zero bodyweight scores zero points instead of NaN
	assert.Zero(t, r.DotsPoints)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	records := []schema.LifterRecord{
		{Name: "A", Gender: "female", BodyweightKg: 63, BestSquatKg: 140, BestBenchKg: 80, BestDeadliftKg: 170},
		{Name: "B", Gender: "F", BodyweightKg: 69, BestSquatKg: 150, BestBenchKg: 85, BestDeadliftKg: 180},
	}

	once := Normalize(records)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	records := []schema.LifterRecord{
		{Name: "A", Gender: "m", BodyweightKg: 90, BestSquatKg: 200},
	}

	_ = Normalize(records)
	assert.Equal(t, schema.Gender("m"), records[0].Gender)
	assert.Zero(t, records[0].TotalKg)
}

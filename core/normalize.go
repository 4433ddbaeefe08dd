package core

import (
	"math"

	"github.com/powertrackhq/powertrack/schema"
)

// Normalize guarantees the canonical schema over any lifter table, whatever
// its origin: normalized genders and attempt results, finite numerics,
// recomputed totals, points and placings where missing. It is idempotent,
// total over any input, returns a fresh slice and never mutates caller data.
//
// Point columns are recomputed only where they are exactly zero. A score that
// was legitimately provided as zero (e.g. a disqualified lifter) cannot be
// told apart from "needs computing"; this matches the upstream data contract
// and is a known, accepted ambiguity.
func Normalize(records []schema.LifterRecord) []schema.LifterRecord {
	data := make([]schema.LifterRecord, len(records))
	copy(data, records)

	needsPlace := len(data) == 0
	for i := range data {
		r := &data[i]

		r.Gender = schema.NormalizeGender(string(r.Gender))
		normalizeAttempts(&r.Squat)
		normalizeAttempts(&r.Bench)
		normalizeAttempts(&r.Deadlift)

		r.BodyweightKg = finiteOrZero(r.BodyweightKg)
		r.BestSquatKg = finiteOrZero(r.BestSquatKg)
		r.BestBenchKg = finiteOrZero(r.BestBenchKg)
		r.BestDeadliftKg = finiteOrZero(r.BestDeadliftKg)
		r.TotalKg = finiteOrZero(r.TotalKg)
		r.DotsPoints = finiteOrZero(r.DotsPoints)
		r.IPFPoints = finiteOrZero(r.IPFPoints)
		r.GlossbrennerPoints = finiteOrZero(r.GlossbrennerPoints)
		r.Age = finiteOrZero(r.Age)

		if r.TotalKg == 0 {
			r.TotalKg = schema.Round3(r.BestSquatKg + r.BestBenchKg + r.BestDeadliftKg)
		}

		if r.DotsPoints == 0 {
			r.DotsPoints = Dots(r.TotalKg, r.BodyweightKg, r.Gender)
		}
		if r.IPFPoints == 0 {
			r.IPFPoints = IPFGL(r.TotalKg, r.BodyweightKg, r.Gender)
		}
		if r.GlossbrennerPoints == 0 {
			r.GlossbrennerPoints = Glossbrenner(r.TotalKg, r.BodyweightKg, r.Gender)
		}

		if r.Place <= 0 {
			needsPlace = true
		}
	}

	// A single missing place invalidates the whole ordering, so placement is
	// recomputed for the entire table or not at all.
	if needsPlace {
		data = SortAndRank(data)
	}
	return data
}

// normalizeAttempts collapses the judged results of one movement's attempt
// slots onto the canonical vocabulary and scrubs non-finite weights.
func normalizeAttempts(attempts *[3]schema.Attempt) {
	for i := range attempts {
		attempts[i].WeightKg = finiteOrZero(attempts[i].WeightKg)
		attempts[i].Result = schema.NormalizeAttemptResult(string(attempts[i].Result))
	}
}

// finiteOrZero degrades NaN and infinities to the zero default.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

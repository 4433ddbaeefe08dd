package core

import (
	"sort"

	"github.com/powertrackhq/powertrack/schema"
)

// SortAndRank orders records by gender ascending, then total descending, then
// bodyweight ascending (the lighter lifter wins ties), and assigns Place as a
// dense 1-based rank within each gender group. It returns a new slice and
// never mutates its input.
func SortAndRank(records []schema.LifterRecord) []schema.LifterRecord {
	ranked := make([]schema.LifterRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		if a.Gender != b.Gender {
			return a.Gender < b.Gender
		}
		if a.TotalKg != b.TotalKg {
			return a.TotalKg > b.TotalKg
		}
		return a.BodyweightKg < b.BodyweightKg
	})

	counts := make(map[schema.Gender]int)
	for i := range ranked {
		counts[ranked[i].Gender]++
		ranked[i].Place = counts[ranked[i].Gender]
	}
	return ranked
}

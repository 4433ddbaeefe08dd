package schema

import (
	"sort"
	"time"
)

// LiftStats is the precomputed distribution summary for one
// (gender, class bucket, equipment, lift) group. Distribution is sorted
// ascending and immutable after construction.
type LiftStats struct {
	Count        int
	Mean         float64
	Median       float64
	Top25        float64 // 75th percentile cut point
	Top10        float64 // 90th
	Top5         float64 // 95th
	Top1         float64 // 99th
	Distribution []float64
}

// PercentileOf returns the percentile rank of a lift value in [0,100] and the
// number of peers at or above that value. The right-insertion point drives the
// percentile and the left-insertion point drives the at-or-above count, so
// strictly-greater and greater-or-equal stay consistent with duplicates.
func (s *LiftStats) PercentileOf(value float64) (float64, int) {
	if s.Count == 0 {
		return 0, 0
	}
	idxRight := sort.Search(len(s.Distribution), func(i int) bool {
		return s.Distribution[i] > value
	})
	idxLeft := sort.SearchFloat64s(s.Distribution, value)
	percentile := float64(idxRight) / float64(s.Count) * 100.0
	atOrAbove := s.Count - idxLeft
	if atOrAbove < 0 {
		atOrAbove = 0
	}
	return percentile, atOrAbove
}

// ReferenceMeta summarizes the historical dataset a ReferenceStats was built
// from.
type ReferenceMeta struct {
	SourcePath  string
	StartDate   time.Time
	EndDate     time.Time
	PeriodLabel string
	RowCount    int
}

// ReferenceStats holds population benchmarks keyed by gender, weight-class
// bucket, equipment class and lift. Built once, immutable afterwards, safe
// for concurrent queries.
type ReferenceStats struct {
	Meta  ReferenceMeta
	Stats map[Gender]map[string]map[EquipmentClass]map[Lift]*LiftStats
}

// GetStats looks up the distribution summary for one group, or nil when the
// group was never built (unknown key or under the minimum sample size).
func (r *ReferenceStats) GetStats(gender Gender, classBucket string, equip EquipmentClass, lift Lift) *LiftStats {
	byClass, ok := r.Stats[gender]
	if !ok {
		return nil
	}
	byEquip, ok := byClass[classBucket]
	if !ok {
		return nil
	}
	byLift, ok := byEquip[equip]
	if !ok {
		return nil
	}
	return byLift[lift]
}

// ReferenceEntry is one row of the historical results table
// (OpenPowerlifting/OpenIPF column layout) before grouping.
type ReferenceEntry struct {
	Sex             string
	Event           string
	Equipment       string
	BodyweightKg    float64
	WeightClassKg   string
	Best3SquatKg    float64
	Best3BenchKg    float64
	Best3DeadliftKg float64
	TotalKg         float64
	Date            time.Time
}

// PercentileBand is a named tier assigned to a lift value from its position
// in a reference distribution. Rank is the nominal "top N%" number; lower is
// better, 999 means unranked.
type PercentileBand struct {
	Label     string
	Rank      int
	Threshold float64
}

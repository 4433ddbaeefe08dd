package core

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/powertrackhq/powertrack/schema"
)

// BuildReferenceStats aggregates historical results into percentile
// distributions grouped by gender, weight-class bucket, equipment and lift.
// Entries outside full-power meets, with unknown sex or without a usable
// date are dropped; groups under the minimum sample size are not published.
// Returns nil when no group survives.
func BuildReferenceStats(entries []schema.ReferenceEntry, sourcePath string) *schema.ReferenceStats {
	type groupKey struct {
		gender schema.Gender
		class  string
		equip  schema.EquipmentClass
		lift   schema.Lift
	}
	groups := make(map[groupKey][]float64)

	var start, end time.Time
	rows := 0
	for _, e := range entries {
		if e.Event != "SBD" {
			continue
		}
		var gender schema.Gender
		switch e.Sex {
		case "M":
			gender = schema.Male
		case "F":
			gender = schema.Female
		default:
			continue
		}
		if e.Date.IsZero() {
			continue
		}

		// Class membership comes from actual bodyweight, not the federation
		// class text, so historical classes collapse onto the current ones.
		bucket := schema.WeightClassBucket(e.BodyweightKg, gender)
		if bucket == "" {
			continue
		}

		equip := schema.EquippedEquipment
		if strings.EqualFold(e.Equipment, "raw") {
			equip = schema.RawEquipment
		}

		rows++
		if start.IsZero() || e.Date.Before(start) {
			start = e.Date
		}
		if end.IsZero() || e.Date.After(end) {
			end = e.Date
		}

		lifts := map[schema.Lift]float64{
			schema.SquatLift:    e.Best3SquatKg,
			schema.BenchLift:    e.Best3BenchKg,
			schema.DeadliftLift: e.Best3DeadliftKg,
			schema.TotalLift:    e.TotalKg,
		}
		for lift, value := range lifts {
			if value <= 0 || math.IsNaN(value) {
				continue
			}
			key := groupKey{gender, bucket, equip, lift}
			groups[key] = append(groups[key], value)
		}
	}

	stats := make(map[schema.Gender]map[string]map[schema.EquipmentClass]map[schema.Lift]*schema.LiftStats)
	built := 0
	for key, values := range groups {
		if len(values) < schema.MinReferenceSampleSize {
			continue
		}
		sort.Float64s(values)

		var sum float64
		for _, v := range values {
			sum += v
		}

		byClass, ok := stats[key.gender]
		if !ok {
			byClass = make(map[string]map[schema.EquipmentClass]map[schema.Lift]*schema.LiftStats)
			stats[key.gender] = byClass
		}
		byEquip, ok := byClass[key.class]
		if !ok {
			byEquip = make(map[schema.EquipmentClass]map[schema.Lift]*schema.LiftStats)
			byClass[key.class] = byEquip
		}
		byLift, ok := byEquip[key.equip]
		if !ok {
			byLift = make(map[schema.Lift]*schema.LiftStats)
			byEquip[key.equip] = byLift
		}

		byLift[key.lift] = &schema.LiftStats{
			Count:        len(values),
			Mean:         sum / float64(len(values)),
			Median:       interpPercentile(values, 50),
			Top25:        interpPercentile(values, 75),
			Top10:        interpPercentile(values, 90),
			Top5:         interpPercentile(values, 95),
			Top1:         interpPercentile(values, 99),
			Distribution: values,
		}
		built++
	}
	if built == 0 {
		return nil
	}

	return &schema.ReferenceStats{
		Meta: schema.ReferenceMeta{
			SourcePath:  sourcePath,
			StartDate:   start,
			EndDate:     end,
			PeriodLabel: periodLabel(start, end),
			RowCount:    rows,
		},
		Stats: stats,
	}
}

// interpPercentile computes the p-th percentile of a sorted slice with linear
// interpolation between closest ranks.
func interpPercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := p / 100.0 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func periodLabel(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return ""
	}
	if start.Year() == end.Year() {
		return start.Format("2006")
	}
	return start.Format("2006") + "-" + end.Format("2006")
}

// SelectBand maps a lift value onto the named tier it clears within one
// reference distribution, walking the cut points from rarest down.
func SelectBand(stats *schema.LiftStats, valueKg float64) schema.PercentileBand {
	bands := []schema.PercentileBand{
		{Label: "World-class (top 1%)", Rank: 1, Threshold: stats.Top1},
		{Label: "Elite (top 5%)", Rank: 5, Threshold: stats.Top5},
		{Label: "International (top 10%)", Rank: 10, Threshold: stats.Top10},
		{Label: "National calibre (top 25%)", Rank: 25, Threshold: stats.Top25},
	}
	for _, band := range bands {
		if band.Threshold > 0 && valueKg >= band.Threshold {
			return band
		}
	}
	if valueKg >= stats.Median {
		return schema.PercentileBand{Label: "Above average", Rank: 50, Threshold: stats.Median}
	}
	return schema.PercentileBand{Label: "Developing", Rank: 90, Threshold: stats.Median}
}

// EvaluatePercentile places one lift value against the reference population.
// The live distributions are preferred; when the group is absent or ref is
// nil it degrades to the frozen fallback snapshot, and to an unranked profile
// when even that has no row. Never returns nil and never errors.
func EvaluatePercentile(ref *schema.ReferenceStats, gender schema.Gender, classBucket string, equip schema.EquipmentClass, lift schema.Lift, valueKg float64) *schema.PercentileProfile {
	profile := &schema.PercentileProfile{
		Discipline: lift,
		LiftKg:     valueKg,
		Label:      "Unranked",
		Rank:       schema.UnrankedRank,
	}
	if valueKg <= 0 || math.IsNaN(valueKg) {
		return profile
	}

	profile.Record = CompareToRecords(lift, valueKg, gender, classBucket)

	if ref != nil {
		if stats := ref.GetStats(gender, classBucket, equip, lift); stats != nil {
			percentile, atOrAbove := stats.PercentileOf(valueKg)
			band := SelectBand(stats, valueKg)
			threshold := band.Threshold
			if threshold == 0 {
				threshold = stats.Median
			}

			profile.Label = band.Label
			profile.Rank = band.Rank
			profile.HasPercentile = true
			profile.Percentile = math.Min(math.Max(percentile, 0), 100)
			profile.AtOrAbove = atOrAbove
			profile.SampleSize = stats.Count
			profile.MedianKg = stats.Median
			profile.MeanKg = stats.Mean
			profile.ThresholdKg = threshold
			if threshold > 0 {
				profile.PerformanceRatio = valueKg / threshold
			}
			profile.PeriodLabel = ref.Meta.PeriodLabel
			return profile
		}
	}

	return evaluateFromFallback(profile, gender, classBucket, lift, valueKg)
}

// evaluateFromFallback fills a profile from the frozen snapshot. The top 1%
// and top 5% cut points are extrapolated from the top 10% cut and the world
// record, since the snapshot only kept three levels.
func evaluateFromFallback(profile *schema.PercentileProfile, gender schema.Gender, classBucket string, lift schema.Lift, valueKg float64) *schema.PercentileProfile {
	cuts, ok := fallbackPercentiles[gender][classBucket][lift]
	if !ok {
		return profile
	}

	profile.FromFallback = true
	profile.MedianKg = cuts.Median

	var bands []schema.PercentileBand
	if cuts.Top10 > 0 {
		top1 := cuts.Top10 * 1.05
		top5 := cuts.Top10 * 1.02
		if record, hasRecord := WorldRecord(classBucket, lift, gender); hasRecord {
			top1 = math.Max(cuts.Top10, record*0.97)
			if delta := record - cuts.Top10; delta > 0 {
				top5 = cuts.Top10 + 0.4*delta
			} else {
				top5 = cuts.Top10 * 1.05
			}
		}
		bands = append(bands,
			schema.PercentileBand{Label: "World-class (top 1%)", Rank: 1, Threshold: top1},
			schema.PercentileBand{Label: "Elite (top 5%)", Rank: 5, Threshold: top5},
			schema.PercentileBand{Label: "International (top 10%)", Rank: 10, Threshold: cuts.Top10},
		)
	}
	if cuts.Top25 > 0 {
		bands = append(bands, schema.PercentileBand{Label: "National calibre (top 25%)", Rank: 25, Threshold: cuts.Top25})
	}
	if cuts.Median > 0 {
		bands = append(bands, schema.PercentileBand{Label: "Above average", Rank: 50, Threshold: cuts.Median})
	}

	for _, band := range bands {
		if valueKg >= band.Threshold-1e-6 {
			profile.Label = band.Label
			profile.Rank = band.Rank
			profile.ThresholdKg = band.Threshold
			profile.PerformanceRatio = valueKg / band.Threshold
			profile.RarityCount = rarityCounts[band.Rank]
			return profile
		}
	}

	if cuts.Median > 0 {
		profile.Label = "Developing"
		profile.Rank = 90
		profile.ThresholdKg = cuts.Median
		profile.PerformanceRatio = valueKg / cuts.Median
	}
	return profile
}

// Package schema has models, constants and shared helpers for all parts of powertrack.
package schema

import "time"

// Attempt is a single platform attempt: the loaded weight and its judged result.
type Attempt struct {
	WeightKg float64       `json:"weight_kg"`
	Result   AttemptResult `json:"result"`
}

// LifterRecord is one row of the canonical meet table. Every data source
// (live LiftingCast feed, uploaded CSV, sample CSV) is reduced to this shape
// before anything downstream touches it.
type LifterRecord struct {
	LifterID     string  `json:"lifter_id,omitempty"`
	Name         string  `json:"name"`
	Gender       Gender  `json:"gender"`
	BodyweightKg float64 `json:"bodyweight_kg"`
	WeightClass  string  `json:"weight_class,omitempty"`
	Division     string  `json:"division,omitempty"`
	Equipment    string  `json:"equipment,omitempty"`
	Location     string  `json:"location,omitempty"`
	Country      string  `json:"country,omitempty"`
	Team         string  `json:"team,omitempty"`
	Age          float64 `json:"age,omitempty"`

	// Attempt slots are indexed 0..2 for platform attempts 1..3.
	Squat    [3]Attempt `json:"squat"`
	Bench    [3]Attempt `json:"bench"`
	Deadlift [3]Attempt `json:"deadlift"`

	BestSquatKg    float64 `json:"best_squat_kg"`
	BestBenchKg    float64 `json:"best_bench_kg"`
	BestDeadliftKg float64 `json:"best_deadlift_kg"`
	TotalKg        float64 `json:"total_kg"`

	DotsPoints         float64 `json:"dots_points"`
	IPFPoints          float64 `json:"ipf_points"`
	GlossbrennerPoints float64 `json:"glossbrenner_points"`

	// Place is a dense 1-based rank within the lifter's gender group.
	// Zero means "not yet placed".
	Place int `json:"place"`
}

// Attempts returns the attempt slots for the given lift.
func (r *LifterRecord) Attempts(lift Lift) [3]Attempt {
	switch lift {
	case SquatLift:
		return r.Squat
	case BenchLift:
		return r.Bench
	default:
		return r.Deadlift
	}
}

// BestLift returns the stored best value for the given lift, or the total
// when TotalLift is requested.
func (r *LifterRecord) BestLift(lift Lift) float64 {
	switch lift {
	case SquatLift:
		return r.BestSquatKg
	case BenchLift:
		return r.BestBenchKg
	case DeadliftLift:
		return r.BestDeadliftKg
	default:
		return r.TotalKg
	}
}

// MeetMetadata describes one loaded dataset. It is created once per load and
// replaced wholesale on refresh, never partially mutated.
type MeetMetadata struct {
	MeetID     string     `json:"meet_id"`
	Name       string     `json:"name"`
	Date       string     `json:"date,omitempty"`
	Federation string     `json:"federation,omitempty"`
	Equipment  string     `json:"equipment,omitempty"`
	Units      UnitSystem `json:"units"`
	Source     DataSource `json:"source"`
}

// RecentMeet is one entry from the LiftingCast recent-meets feed.
type RecentMeet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date,omitempty"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	MeetDate  time.Time `json:"meet_date,omitzero"`
}

// RecencyAnchor returns the timestamp used to order and age-filter a feed
// entry: createDate when present, otherwise the meet date.
func (m *RecentMeet) RecencyAnchor() time.Time {
	if !m.CreatedAt.IsZero() {
		return m.CreatedAt
	}
	return m.MeetDate
}

// IngestRunRecord is a row from the powertrack_ingest_runs history table.
type IngestRunRecord struct {
	RunID      int64
	MeetID     string
	Source     DataSource
	StartTime  time.Time
	EndTime    *time.Time
	DurationMs *int32
	LifterRows int32
}

package schema

// UnrankedRank marks a profile with no reference data at all.
const UnrankedRank = 999

// RecordComparison relates one lift value to the IPF world and USAPL American
// record books.
type RecordComparison struct {
	IPFRecord     float64
	IPFPercent    float64
	IPFDelta      float64
	IsIPFRecord   bool
	USAPLRecord   float64
	USAPLPercent  float64
	USAPLDelta    float64
	IsUSAPLRecord bool
}

// PercentileProfile is the full placement of one lift value against the
// reference population, from either the live distributions or the frozen
// fallback snapshot.
type PercentileProfile struct {
	Discipline Lift
	LiftKg     float64

	Label string
	Rank  int // 1/5/10/25/50/90, UnrankedRank when nothing matched

	// Percentile and peer counts are only known on the live path.
	HasPercentile bool
	Percentile    float64
	AtOrAbove     int
	SampleSize    int

	MedianKg         float64
	MeanKg           float64
	ThresholdKg      float64
	PerformanceRatio float64

	PeriodLabel  string
	FromFallback bool
	// RarityCount approximates how many lifters sit in a fallback tier.
	// Zero for tiers the snapshot never counted and on the live path.
	RarityCount int

	Record *RecordComparison
}

// PercentileReport bundles one lifter's profiles across the evaluated lifts.
type PercentileReport struct {
	Lifter      LifterRecord
	Meet        MeetMetadata
	ClassBucket string
	Equipment   EquipmentClass
	Profiles    []*PercentileProfile
}

package schema

// Custom string types for type safety.
type (
	// Gender is the normalized gender category of a lifter.
	Gender string

	// AttemptResult is the judged outcome of a single attempt.
	AttemptResult string

	// Lift identifies one of the three movements, or the meet total.
	Lift string

	// EquipmentClass is the RAW/EQUIPPED split used for reference grouping.
	EquipmentClass string

	// UnitSystem is the unit system a dataset or display uses.
	UnitSystem string

	// DataSource tags where a dataset came from.
	DataSource string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// Normalized gender categories.
const (
	Male        Gender = "MALE"
	Female      Gender = "FEMALE"
	Unspecified Gender = "UNSPECIFIED"
)

// Attempt results permitted after normalization.
const (
	GoodLift    AttemptResult = "good"
	BadLift     AttemptResult = "bad"
	PendingLift AttemptResult = "pending"
)

// Lift names. The squat/bench/dead spellings match the LiftingCast API.
const (
	SquatLift    Lift = "squat"
	BenchLift    Lift = "bench"
	DeadliftLift Lift = "dead"
	TotalLift    Lift = "total"
)

// Equipment classes for reference grouping.
const (
	RawEquipment      EquipmentClass = "RAW"
	EquippedEquipment EquipmentClass = "EQUIPPED"
)

// Unit systems.
const (
	KGUnits  UnitSystem = "KG"
	LBSUnits UnitSystem = "LBS"
)

// Data source tags.
const (
	LiftingCastSource DataSource = "liftingcast"
	SampleCSVSource   DataSource = "sample_csv"
	UploadedCSVSource DataSource = "uploaded_csv"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Weight conversion constants.
const (
	KgPerPound = 0.45359237
	LbPerKg    = 2.2046226218
)

// MinReferenceSampleSize is the minimum number of historical entries a
// (gender, class, equipment, lift) group needs before its percentiles are
// considered stable enough to publish.
const MinReferenceSampleSize = 40

// ScoredLifts are the movements plus total, in report order.
var ScoredLifts = []Lift{SquatLift, BenchLift, DeadliftLift, TotalLift}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// MaleClassBuckets are the current IPF men's weight classes, as upper bounds.
// The final open class has no upper bound.
var MaleClassBuckets = []ClassBucket{
	{Label: "59", UpperKg: 59},
	{Label: "66", UpperKg: 66},
	{Label: "74", UpperKg: 74},
	{Label: "83", UpperKg: 83},
	{Label: "93", UpperKg: 93},
	{Label: "105", UpperKg: 105},
	{Label: "120", UpperKg: 120},
	{Label: "120+", UpperKg: 0},
}

// FemaleClassBuckets are the current IPF women's weight classes.
var FemaleClassBuckets = []ClassBucket{
	{Label: "47", UpperKg: 47},
	{Label: "52", UpperKg: 52},
	{Label: "57", UpperKg: 57},
	{Label: "63", UpperKg: 63},
	{Label: "69", UpperKg: 69},
	{Label: "76", UpperKg: 76},
	{Label: "84", UpperKg: 84},
	{Label: "84+", UpperKg: 0},
}

// ClassBucket is one fixed bodyweight range used for percentile grouping,
// independent of any federation-assigned class.
type ClassBucket struct {
	Label   string
	UpperKg float64 // 0 means open-ended
}

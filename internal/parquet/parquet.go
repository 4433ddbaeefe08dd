// Package parquet provides data structures and functions for exporting meet
// results and ingestion history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/powertrackhq/powertrack/schema"
)

// LifterRow represents one scored lifter from a meet, flattened for columnar
// storage together with its meet context.
type LifterRow struct {
	// MeetID identifies the meet this row came from
	MeetID string `parquet:"meet_id,snappy"`

	// MeetName is the display name of the meet
	MeetName string `parquet:"meet_name,snappy"`

	// MeetDate is the display date of the meet (nullable)
	MeetDate *string `parquet:"meet_date,optional,snappy"`

	// Source tags where the dataset came from (liftingcast, uploaded_csv, ...)
	Source string `parquet:"source,snappy"`

	// LifterID is the source-assigned lifter identifier (nullable)
	LifterID *string `parquet:"lifter_id,optional,snappy"`

	// Name is the lifter's display name
	Name string `parquet:"name,snappy"`

	// Gender is the normalized gender category
	Gender string `parquet:"gender,snappy"`

	// BodyweightKg is the weigh-in bodyweight in kilograms
	BodyweightKg float64 `parquet:"bodyweight_kg,snappy"`

	// WeightClass is the declared awards weight class (nullable)
	WeightClass *string `parquet:"weight_class,optional,snappy"`

	// Division is the awards division name (nullable)
	Division *string `parquet:"division,optional,snappy"`

	// Equipment is the lifter's equipment category (nullable)
	Equipment *string `parquet:"equipment,optional,snappy"`

	// Best lifts and total, all in kilograms
	BestSquatKg    float64 `parquet:"best_squat_kg,snappy"`
	BestBenchKg    float64 `parquet:"best_bench_kg,snappy"`
	BestDeadliftKg float64 `parquet:"best_deadlift_kg,snappy"`
	TotalKg        float64 `parquet:"total_kg,snappy"`

	// Bodyweight-adjusted point scores
	DotsPoints         float64 `parquet:"dots_points,snappy"`
	IPFPoints          float64 `parquet:"ipf_points,snappy"`
	GlossbrennerPoints float64 `parquet:"glossbrenner_points,snappy"`

	// Place is the dense rank within the lifter's gender group
	Place int32 `parquet:"place,snappy"`
}

// IngestRun represents a single meet ingestion run with metadata.
// This struct maps to the powertrack_ingest_runs database table.
type IngestRun struct {
	// RunID is the unique identifier for this ingestion run
	RunID int64 `parquet:"run_id,snappy"`

	// MeetID identifies the meet that was ingested
	MeetID string `parquet:"meet_id,snappy"`

	// Source tags where the dataset came from
	Source string `parquet:"source,snappy"`

	// StartTime is when the ingestion began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the ingestion completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// LifterRows is the number of lifter rows the run produced
	LifterRows int32 `parquet:"lifter_rows,snappy"`
}

// WriteLifterRowsParquet writes a slice of LifterRow structs to a Parquet file.
func WriteLifterRowsParquet(data []LifterRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the LifterRow struct tags
	writer := parquet.NewGenericWriter[LifterRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteIngestRunsParquet writes a slice of IngestRun structs to a Parquet file.
func WriteIngestRunsParquet(data []IngestRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the IngestRun struct tags
	writer := parquet.NewGenericWriter[IngestRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertLifterRecords converts canonical lifter records plus their meet
// metadata to LifterRow for Parquet export.
func ConvertLifterRecords(records []schema.LifterRecord, metadata schema.MeetMetadata) []LifterRow {
	result := make([]LifterRow, len(records))
	for i, record := range records {
		result[i] = LifterRow{
			MeetID:             metadata.MeetID,
			MeetName:           metadata.Name,
			MeetDate:           optionalString(metadata.Date),
			Source:             string(metadata.Source),
			LifterID:           optionalString(record.LifterID),
			Name:               record.Name,
			Gender:             string(record.Gender),
			BodyweightKg:       record.BodyweightKg,
			WeightClass:        optionalString(record.WeightClass),
			Division:           optionalString(record.Division),
			Equipment:          optionalString(record.Equipment),
			BestSquatKg:        record.BestSquatKg,
			BestBenchKg:        record.BestBenchKg,
			BestDeadliftKg:     record.BestDeadliftKg,
			TotalKg:            record.TotalKg,
			DotsPoints:         record.DotsPoints,
			IPFPoints:          record.IPFPoints,
			GlossbrennerPoints: record.GlossbrennerPoints,
			Place:              int32(record.Place),
		}
	}
	return result
}

// ConvertIngestRunRecords converts schema.IngestRunRecord to IngestRun for Parquet export.
func ConvertIngestRunRecords(records []schema.IngestRunRecord) []IngestRun {
	result := make([]IngestRun, len(records))
	for i, record := range records {
		result[i] = IngestRun{
			RunID:         record.RunID,
			MeetID:        record.MeetID,
			Source:        string(record.Source),
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.DurationMs,
			LifterRows:    record.LifterRows,
		}
	}
	return result
}

// optionalString maps an empty string onto a null parquet cell.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

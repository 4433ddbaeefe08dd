package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/powertrackhq/powertrack/schema"
)

// referenceColumns are the columns a historical reference CSV must carry,
// matching the OpenPowerlifting/OpenIPF export layout.
var referenceColumns = []string{
	"Sex",
	"Event",
	"Equipment",
	"BodyweightKg",
	"WeightClassKg",
	"Best3SquatKg",
	"Best3BenchKg",
	"Best3DeadliftKg",
	"TotalKg",
	"Date",
}

// LoadReferenceFile reads a historical results CSV from disk.
func LoadReferenceFile(path string) ([]schema.ReferenceEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference CSV: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := ReadReferenceEntries(f)
	if err != nil {
		return nil, fmt.Errorf("read reference CSV %s: %w", path, err)
	}
	return entries, nil
}

// ReadReferenceEntries parses historical result rows from a CSV stream. All
// reference columns must be present in the header; inside rows the usual
// silent zero defaults apply, and unparsable dates degrade to the zero time
// so the year-range filter can drop them later.
func ReadReferenceEntries(r io.Reader) ([]schema.ReferenceEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV has no header row")
	}
	if err != nil {
		return nil, err
	}
	cols := buildColumnIndex(header)
	for _, column := range referenceColumns {
		if !cols.has(column) {
			return nil, fmt.Errorf("reference CSV is missing column %q", column)
		}
	}

	var entries []schema.ReferenceEntry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		entries = append(entries, schema.ReferenceEntry{
			Sex:             cols.cell(row, "Sex"),
			Event:           cols.cell(row, "Event"),
			Equipment:       cols.cell(row, "Equipment"),
			BodyweightKg:    schema.ParseFloatOrZero(cols.cell(row, "BodyweightKg")),
			WeightClassKg:   cols.cell(row, "WeightClassKg"),
			Best3SquatKg:    schema.ParseFloatOrZero(cols.cell(row, "Best3SquatKg")),
			Best3BenchKg:    schema.ParseFloatOrZero(cols.cell(row, "Best3BenchKg")),
			Best3DeadliftKg: schema.ParseFloatOrZero(cols.cell(row, "Best3DeadliftKg")),
			TotalKg:         schema.ParseFloatOrZero(cols.cell(row, "TotalKg")),
			Date:            parseReferenceDate(cols.cell(row, "Date")),
		})
	}
	return entries, nil
}

func parseReferenceDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return t
}

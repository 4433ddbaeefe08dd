// Package csvload reads meet result exports and historical reference tables
// from CSV into the canonical schema.
package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/powertrackhq/powertrack/schema"
)

// columnIndex maps a header row to column positions, case-insensitively and
// ignoring surrounding whitespace.
type columnIndex map[string]int

func buildColumnIndex(header []string) columnIndex {
	index := make(columnIndex, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

func (c columnIndex) cell(row []string, column string) string {
	i, ok := c[strings.ToLower(column)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columnIndex) has(column string) bool {
	_, ok := c[strings.ToLower(column)]
	return ok
}

// anyCell returns the cell under the first header that exists in the sheet.
// Used for columns that ship under more than one name.
func (c columnIndex) anyCell(row []string, columns ...string) string {
	for _, column := range columns {
		if c.has(column) {
			return c.cell(row, column)
		}
	}
	return ""
}

// LoadMeetFile reads a meet results CSV from disk. Rows come back unscored;
// metadata carries the filename as meet id and name, matching how uploaded
// result sheets are identified.
func LoadMeetFile(path string) ([]schema.LifterRecord, schema.MeetMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, schema.MeetMetadata{}, fmt.Errorf("open meet CSV: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := ReadMeetRows(f)
	if err != nil {
		return nil, schema.MeetMetadata{}, fmt.Errorf("read meet CSV %s: %w", path, err)
	}

	name := filepath.Base(path)
	metadata := schema.MeetMetadata{
		MeetID: name,
		Name:   name,
		Units:  schema.KGUnits,
		Source: schema.UploadedCSVSource,
	}
	return rows, metadata, nil
}

// ReadMeetRows parses meet result rows from a CSV stream. Only a header row
// is mandatory; any missing column degrades to its zero default, and best
// lifts are synthesized from attempt columns when absent. Numeric cells parse
// with silent zero defaults because exported sheets are messy.
func ReadMeetRows(r io.Reader) ([]schema.LifterRecord, error) {
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

	var records []schema.LifterRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record := schema.LifterRecord{
			LifterID:     cols.cell(row, "Lifter ID"),
			Name:         cols.cell(row, "Name"),
			Gender:       schema.NormalizeGender(cols.cell(row, "Gender")),
			BodyweightKg: schema.ParseFloatOrZero(cols.cell(row, "Body Weight (kg)")),
			WeightClass:  cols.cell(row, "Weight Class"),
			Division:     cols.cell(row, "Awards Division"),
			Equipment:    cols.cell(row, "Equipment"),
			Location:     cols.anyCell(row, "State/Province", "Location"),
			Country:      cols.cell(row, "Country"),
			Team:         cols.cell(row, "Team"),
			Age:          schema.ParseFloatOrZero(cols.anyCell(row, "Exact Age", "Age")),
		}

		record.Squat = readAttempts(cols, row, "Squat", "S")
		record.Bench = readAttempts(cols, row, "Bench", "B")
		record.Deadlift = readAttempts(cols, row, "Deadlift", "D")

		record.BestSquatKg = bestOrSynthesized(cols, row, "Best Squat", record.Squat)
		record.BestBenchKg = bestOrSynthesized(cols, row, "Best Bench", record.Bench)
		record.BestDeadliftKg = bestOrSynthesized(cols, row, "Best Deadlift", record.Deadlift)

		record.TotalKg = schema.ParseFloatOrZero(cols.cell(row, "Total"))
		record.DotsPoints = schema.ParseFloatOrZero(cols.cell(row, "Dots Points"))
		record.IPFPoints = schema.ParseFloatOrZero(cols.cell(row, "IPF Points"))
		record.GlossbrennerPoints = schema.ParseFloatOrZero(cols.cell(row, "Glossbrenner Points"))
		record.Place = int(schema.ParseFloatOrZero(cols.cell(row, "Place")))

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV contains no lifter rows")
	}
	return records, nil
}

// readAttempts reads the three "<Label> N" weight columns and the matching
// "<P>NHRef" judged-result columns for one movement.
func readAttempts(cols columnIndex, row []string, label, prefix string) [3]schema.Attempt {
	var attempts [3]schema.Attempt
	for i := 0; i < 3; i++ {
		weightCol := fmt.Sprintf("%s %d", label, i+1)
		resultCol := fmt.Sprintf("%s%dHRef", prefix, i+1)
		attempts[i] = schema.Attempt{
			WeightKg: schema.ParseFloatOrZero(cols.cell(row, weightCol)),
			Result:   schema.NormalizeAttemptResult(cols.cell(row, resultCol)),
		}
	}
	return attempts
}

// bestOrSynthesized prefers the exported best column and falls back to the
// best good attempt when the column is absent or empty.
func bestOrSynthesized(cols columnIndex, row []string, column string, attempts [3]schema.Attempt) float64 {
	if cols.has(column) {
		if cell := cols.cell(row, column); cell != "" {
			return schema.ParseFloatOrZero(cell)
		}
	}
	return schema.BestOfAttempts(attempts)
}

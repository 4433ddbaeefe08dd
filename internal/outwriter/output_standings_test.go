package outwriter

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/schema"
)

func sampleStandings() ([]schema.LifterRecord, schema.MeetMetadata) {
	records := []schema.LifterRecord{
		{
			Name:               "Alex Stone",
			Gender:             schema.Male,
			BodyweightKg:       92.5,
			WeightClass:        "93",
			Division:           "Open",
			Equipment:          "Raw",
			BestSquatKg:        210,
			BestBenchKg:        140,
			BestDeadliftKg:     250,
			TotalKg:            600,
			DotsPoints:         381.21,
			IPFPoints:          79.88,
			GlossbrennerPoints: 258.43,
			Place:              1,
		},
		{
			Name:         "Brett Kim",
			Gender:       schema.Male,
			BodyweightKg: 91.0,
			WeightClass:  "93",
			TotalKg:      550,
			Place:        2,
		},
	}
	meta := schema.MeetMetadata{
		MeetID: "m1",
		Name:   "Spring Classic",
		Date:   "March 15, 2026",
		Units:  schema.KGUnits,
		Source: schema.LiftingCastSource,
	}
	return records, meta
}

func standingsConfig() *contract.Config {
	return &contract.Config{
		Precision:    1,
		Output:       schema.TextOut,
		Units:        schema.KGUnits,
		Width:        160,
		CacheBackend: schema.SQLiteBackend,
	}
}

func TestWriteStandingsTable(t *testing.T) {
	color.NoColor = true
	records, meta := sampleStandings()
	cfg := standingsConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeStandingsTable(records, meta, nil, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Spring Classic - March 15, 2026 [liftingcast]")
	assert.Contains(t, out, "Alex Stone")
	assert.Contains(t, out, "Brett Kim")
	assert.Contains(t, out, "600.0")
	assert.Contains(t, out, "381.2")
	assert.Contains(t, out, "Showing 2 lifters")
	assert.Contains(t, out, "Cache backend: sqlite")
}

func TestWriteStandingsTableWithBands(t *testing.T) {
	color.NoColor = true
	records, meta := sampleStandings()
	cfg := standingsConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	bands := []string{"Elite (top 5%)", "Above average"}
	var buf bytes.Buffer
	err := writeStandingsTable(records, meta, bands, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Elite (top 5%)")
	assert.Contains(t, out, "Above average")
}

func TestWriteStandingsTablePoundDisplay(t *testing.T) {
	color.NoColor = true
	records, meta := sampleStandings()
	cfg := standingsConfig()
	cfg.Units = schema.LBSUnits
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeStandingsTable(records, meta, nil, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	// 600 kg converts to about 1322.8 lb in the table
	out := buf.String()
	assert.Contains(t, out, "1322.8")
	assert.NotContains(t, out, "600.0")
}

func TestWriteCSVResultsForStandings(t *testing.T) {
	records, meta := sampleStandings()
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	err := writeCSVResultsForStandings(&buf, records, meta, nil, fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "place")
	assert.Contains(t, lines[0], "total_kg")
	assert.NotContains(t, lines[0], "benchmark")
	assert.Contains(t, lines[1], "Alex Stone")
	assert.Contains(t, lines[1], "600.00")
	assert.Contains(t, lines[1], "liftingcast")
}

func TestWriteCSVResultsForStandingsWithBands(t *testing.T) {
	records, meta := sampleStandings()
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	err := writeCSVResultsForStandings(&buf, records, meta, []string{"Elite (top 5%)", "Developing"}, fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(t, lines[0], "benchmark")
	assert.Contains(t, lines[1], "Elite (top 5%)")
	assert.Contains(t, lines[2], "Developing")
}

func TestWriteJSONResultsForStandings(t *testing.T) {
	records, meta := sampleStandings()

	var buf bytes.Buffer
	err := writeJSONResultsForStandings(&buf, records, meta, []string{"Elite (top 5%)", ""})
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	meet := result["meet"].(map[string]any)
	assert.Equal(t, "m1", meet["meet_id"])

	lifters := result["lifters"].([]any)
	require.Len(t, lifters, 2)
	first := lifters[0].(map[string]any)
	assert.Equal(t, "Alex Stone", first["name"])
	assert.Equal(t, float64(600), first["total_kg"])
	assert.Equal(t, "Elite (top 5%)", first["benchmark"])

	// Empty bands are omitted entirely
	second := lifters[1].(map[string]any)
	_, hasBand := second["benchmark"]
	assert.False(t, hasBand)
}

func TestWriteStandingsParquetResults(t *testing.T) {
	records, meta := sampleStandings()
	cfg := standingsConfig()
	cfg.Output = schema.ParquetOut

	// Missing output file is rejected
	err := writeStandingsParquetResults(records, meta, cfg)
	assert.ErrorContains(t, err, "--output-file is required")

	cfg.OutputFile = filepath.Join(t.TempDir(), "standings.parquet")
	require.NoError(t, writeStandingsParquetResults(records, meta, cfg))
	assert.FileExists(t, cfg.OutputFile)
}

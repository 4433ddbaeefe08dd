package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/schema"
)

func sampleRecentMeets() []schema.RecentMeet {
	return []schema.RecentMeet{
		{
			ID:        "m1",
			Name:      "Spring Classic",
			Date:      "March 15, 2026",
			URL:       "https://liftingcast.com/meets/m1",
			CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:   "m2",
			Name: "Winter Open",
			URL:  "https://liftingcast.com/meets/m2",
		},
	}
}

func TestWriteRecentTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeRecentTable(sampleRecentMeets(), time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Spring Classic")
	assert.Contains(t, out, "March 15, 2026")
	assert.Contains(t, out, "https://liftingcast.com/meets/m1")
	// Missing date renders as a dash
	assert.Contains(t, out, "Winter Open")
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "Showing 2 meets")
}

func TestWriteCSVResultsForRecent(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVResultsForRecent(&buf, sampleRecentMeets())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "meet_id")
	assert.Contains(t, lines[1], "m1")
	assert.Contains(t, lines[1], "2026-03-10T12:00:00Z")
	// Zero create time leaves the cell empty
	assert.True(t, strings.HasSuffix(lines[2], ","))
}

func TestWriteRecentJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleRecentMeets()))

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, "Spring Classic", result[0]["name"])

	// Zero timestamps are omitted from the payload
	_, hasCreated := result[1]["created_at"]
	assert.False(t, hasCreated)
}

func TestPrintRecentMeetsRejectsParquet(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}
	err := PrintRecentMeets(sampleRecentMeets(), cfg, time.Second)
	assert.ErrorContains(t, err, "parquet output is not supported")
}

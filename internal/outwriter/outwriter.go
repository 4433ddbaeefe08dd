// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteStandings prints ranked meet standings using the configured output format.
// The bands slice carries one percentile band label per record when benchmark
// annotation is on; pass nil to omit the column.
func (ow *OutWriter) WriteStandings(records []schema.LifterRecord, meta schema.MeetMetadata, bands []string, cfg *contract.Config, duration time.Duration) error {
	return PrintStandingsResults(records, meta, bands, cfg, duration)
}

// WritePercentile prints a lifter's percentile report using the configured output format.
func (ow *OutWriter) WritePercentile(report *schema.PercentileReport, cfg *contract.Config, duration time.Duration) error {
	return PrintPercentileReport(report, cfg, duration)
}

// WriteRecent prints the recent-meets feed using the configured output format.
func (ow *OutWriter) WriteRecent(meets []schema.RecentMeet, cfg *contract.Config, duration time.Duration) error {
	return PrintRecentMeets(meets, cfg, duration)
}

// WriteHistory prints ingestion run history using the configured output format.
func (ow *OutWriter) WriteHistory(runs []schema.IngestRunRecord, cfg *contract.Config, duration time.Duration) error {
	return PrintHistoryRuns(runs, cfg, duration)
}

package schema

import "time"

// CacheStatus has status information about the meet payload cache.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time,omitzero"`
	OldestEntryTime time.Time `json:"oldest_entry_time,omitzero"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus has status information about the ingest history store.
type HistoryStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time,omitzero"`
	OldestRunTime time.Time `json:"oldest_run_time,omitzero"`
	TotalRows     int64     `json:"total_rows"`
}

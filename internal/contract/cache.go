package contract

import (
	"time"

	"github.com/powertrackhq/powertrack/schema"
)

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetMeetStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore records ingestion runs for auditing and export.
type HistoryStore interface {
	BeginRun(meetID string, source schema.DataSource, startTime time.Time) (int64, error)
	EndRun(runID int64, endTime time.Time, lifterRows int) error
	ListRuns(limit int) ([]schema.IngestRunRecord, error)
	GetStatus() (schema.HistoryStatus, error)
	Close() error
}

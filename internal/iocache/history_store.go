package iocache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/schema"
)

// historyRunsTable is the name of the table for ingestion run tracking.
const historyRunsTable = "powertrack_ingest_runs"

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetHistoryDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	// Create the table schema
	query := getCreateIngestRunsQuery(backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", historyRunsTable, err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// getCreateIngestRunsQuery returns the CREATE TABLE query for powertrack_ingest_runs.
func getCreateIngestRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(historyRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				meet_id VARCHAR(255) NOT NULL,
				source VARCHAR(50) NOT NULL,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				run_duration_ms INT,
				lifter_rows INT NOT NULL DEFAULT 0
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				meet_id TEXT NOT NULL,
				source TEXT NOT NULL,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				run_duration_ms INT,
				lifter_rows INT NOT NULL DEFAULT 0
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				meet_id TEXT NOT NULL,
				source TEXT NOT NULL,
				start_time TEXT NOT NULL,
				end_time TEXT,
				run_duration_ms INTEGER,
				lifter_rows INTEGER NOT NULL DEFAULT 0
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new ingestion run and returns its unique ID.
func (hs *HistoryStoreImpl) BeginRun(meetID string, source schema.DataSource, startTime time.Time) (int64, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(historyRunsTable, hs.backend)

	var runID int64
	var err error
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (meet_id, source, start_time) VALUES ($1, $2, $3) RETURNING run_id`, quotedTableName)
		err = hs.db.QueryRow(query, meetID, string(source), startTime).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (meet_id, source, start_time) VALUES (?, ?, ?)`, quotedTableName)
		var result sql.Result
		result, err = hs.db.Exec(query, meetID, string(source), formatTime(startTime, hs.backend))
		if err != nil {
			return 0, err
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert ingest run: %w", err)
	}

	return runID, nil
}

// EndRun updates the ingestion run with completion data.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, lifterRows int) error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	// First, get the start_time to calculate duration
	quotedTableName := quoteTableName(historyRunsTable, hs.backend)
	var startTime time.Time

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = $1`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = ?`, quotedTableName)
	}

	row := hs.db.QueryRow(query, runID)

	// Handle different time storage formats per backend
	switch hs.backend {
	case schema.SQLiteBackend:
		var startTimeStr string
		if err := row.Scan(&startTimeStr); err != nil {
			return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
		}
		var err error
		startTime, err = time.Parse(time.RFC3339Nano, startTimeStr)
		if err != nil {
			return fmt.Errorf("failed to parse start_time: %w", err)
		}
	default: // MySQL and PostgreSQL store as native datetime
		if err := row.Scan(&startTime); err != nil {
			return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
		}
	}

	// Calculate duration in milliseconds
	durationMs := endTime.Sub(startTime).Milliseconds()

	// Update the ingestion run with completion data
	var updateQuery string
	var args []any

	switch hs.backend {
	case schema.PostgreSQLBackend:
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = $1, run_duration_ms = $2, lifter_rows = $3 WHERE run_id = $4`, quotedTableName)
		args = []any{endTime, durationMs, lifterRows, runID}
	default: // SQLite and MySQL
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, lifter_rows = ? WHERE run_id = ?`, quotedTableName)
		args = []any{formatTime(endTime, hs.backend), durationMs, lifterRows, runID}
	}

	_, err := hs.db.Exec(updateQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to update ingest run: %w", err)
	}

	return nil
}

// ListRuns retrieves ingestion runs from the store, newest first. A
// non-positive limit returns all runs.
func (hs *HistoryStoreImpl) ListRuns(limit int) ([]schema.IngestRunRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(historyRunsTable, hs.backend)
	query := fmt.Sprintf("SELECT run_id, meet_id, source, start_time, end_time, run_duration_ms, lifter_rows FROM %s ORDER BY run_id DESC", quotedTableName)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingest runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.IngestRunRecord

	for rows.Next() {
		var record schema.IngestRunRecord
		var source string

		switch hs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &record.MeetID, &source, &startTimeStr, &endTimeStr, &record.DurationMs, &record.LifterRows); err != nil {
				return nil, fmt.Errorf("failed to scan ingest run: %w", err)
			}
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			record.StartTime = startTime
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.MeetID, &source, &record.StartTime, &record.EndTime, &record.DurationMs, &record.LifterRows); err != nil {
				return nil, fmt.Errorf("failed to scan ingest run: %w", err)
			}
		}

		record.Source = schema.DataSource(source)
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingest runs: %w", err)
	}

	return results, nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   string(hs.backend),
		Connected: hs.db != nil,
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(historyRunsTable, hs.backend)

	// Get total runs
	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := hs.db.QueryRow(runsQuery)
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns == 0 {
		return status, nil
	}

	// Get last run info
	lastRunQuery := fmt.Sprintf("SELECT run_id, start_time FROM %s ORDER BY run_id DESC LIMIT 1", quotedTableName)
	row = hs.db.QueryRow(lastRunQuery)

	switch hs.backend {
	case schema.SQLiteBackend:
		var lastRunTimeStr string
		if err := row.Scan(&status.LastRunID, &lastRunTimeStr); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
		lastRunTime, err := time.Parse(time.RFC3339Nano, lastRunTimeStr)
		if err != nil {
			return status, fmt.Errorf("failed to parse last run time: %w", err)
		}
		status.LastRunTime = lastRunTime
	default: // MySQL and PostgreSQL store as native datetime
		if err := row.Scan(&status.LastRunID, &status.LastRunTime); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
	}

	// Get oldest run time
	oldestRunQuery := fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", quotedTableName)
	row = hs.db.QueryRow(oldestRunQuery)

	switch hs.backend {
	case schema.SQLiteBackend:
		var oldestRunTimeStr string
		if err := row.Scan(&oldestRunTimeStr); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
		oldestRunTime, err := time.Parse(time.RFC3339Nano, oldestRunTimeStr)
		if err != nil {
			return status, fmt.Errorf("failed to parse oldest run time: %w", err)
		}
		status.OldestRunTime = oldestRunTime
	default:
		if err := row.Scan(&status.OldestRunTime); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
	}

	// Get total lifter rows ingested
	rowsQuery := fmt.Sprintf("SELECT COALESCE(SUM(lifter_rows), 0) FROM %s", quotedTableName)
	row = hs.db.QueryRow(rowsQuery)
	if err := row.Scan(&status.TotalRows); err != nil {
		return status, fmt.Errorf("failed to get total lifter rows: %w", err)
	}

	return status, nil
}

package iocache

import (
	"errors"
	"fmt"

	"github.com/powertrackhq/powertrack/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of ingestion history to a Parquet file.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("history store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no ingestion history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total ingestion runs: %d\n", status.TotalRuns)

	// Retrieve all ingestion runs
	runs, err := store.ListRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve ingestion runs: %w", err)
	}

	// Convert and write to Parquet
	parquetRuns := parquet.ConvertIngestRunRecords(runs)
	runsFile := outputFile + ".ingest_runs.parquet"
	if err := parquet.WriteIngestRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write ingestion runs: %w", err)
	}
	fmt.Printf("Exported %d ingestion runs to: %s\n", len(parquetRuns), runsFile)

	return nil
}

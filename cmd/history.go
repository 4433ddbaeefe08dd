package cmd

import (
	"fmt"

	"github.com/powertrackhq/powertrack/core"
	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/internal/iocache"
	"github.com/powertrackhq/powertrack/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by list and export commands)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no meet caching for history commands)
	if err := iocache.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on ingestion history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by meet commands. This avoids meet resolution
// and complex config processing for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage ingestion run tracking and exports",
	Long: `Manage the ingestion run history used for auditing and reporting.

When enabled, Powertrack tracks every meet load, storing:
- Which meet was loaded and from which source
- When the run started and finished
- How many lifter rows the run produced

This makes it easy to audit what was pulled during a live meet and to
feed run metadata into analytics pipelines.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recent ingestion runs
  status  - Show history tracking statistics
  export  - Export run data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Show the last runs
  powertrack history list

  # Export for analysis in pandas/DuckDB
  powertrack history export --output-file runs.parquet`,
}

// historyListCmd lists recent ingestion runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent ingestion runs, newest first",
	Long: `List the most recent ingestion runs from the history store.

Each row shows the run id, meet, source, start time, duration and how
many lifter rows the run produced. Unfinished runs show no duration.

Examples:
  # The most recent runs
  powertrack history list

  # A longer window, machine readable
  powertrack history list --limit 100 --output csv`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// The list command renders through the shared writers, so the
		// display fields need the same defaults sharedSetup would give them.
		cfg.ResultLimit = viper.GetInt("limit")
		cfg.Precision = viper.GetInt("precision")
		cfg.Output = schema.OutputMode(viper.GetString("output"))
		cfg.Width = viper.GetInt("width")
		if err := core.ExecuteHistoryList(rootCtx, cfg, iocache.Manager); err != nil {
			contract.LogFatal("Cannot list ingestion runs", err)
		}
	},
}

// historyClearCmd clears the history data.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all ingestion run tracking data",
	Long: `Delete all stored ingestion runs.

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting run tracking
- Database storage is full
- Starting fresh history

Examples:
  # Export before clearing
  powertrack history export --output-file backup.parquet
  powertrack history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearHistory(cfg.HistoryBackend, contract.GetHistoryDBFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history data", err)
		}
		fmt.Println("History data cleared successfully.")
	},
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display ingestion history statistics and connection details",
	Long: `Show detailed information about ingestion run tracking.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last and oldest run timestamps
- Total lifter rows ingested across all runs

Examples:
  # Check history tracking status
  powertrack history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(status)
	},
}

// historyExportCmd exports ingestion run data to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export ingestion runs to Parquet for BI tools and analytics",
	Long: `Export all stored ingestion runs to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all run data
  powertrack history export --output-file runs.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history data", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the ingestion history store.

Migrations allow:
- Upgrading to new schema versions when Powertrack is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  powertrack history migrate

  # Migrate to specific version
  powertrack history migrate --target-version 2

  # Rollback to previous version
  powertrack history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

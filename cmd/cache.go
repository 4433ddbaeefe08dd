package cmd

import (
	"fmt"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/internal/iocache"
	"github.com/powertrackhq/powertrack/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no history tracking for cache commands)
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by meet commands. This avoids meet resolution and
// complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the meet payload cache (improves performance)",
	Long: `Manage the meet payload cache that speeds up repeated lookups.

Powertrack caches full meet payloads from LiftingCast so repeat queries
against the same meet skip the network entirely while the entry is fresh.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached data

Examples:
  # Check cache status
  powertrack cache status

  # Clear cache mid-meet to force fresh attempts
  powertrack cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached meet payloads",
	Long: `Delete all cached meet payloads from the configured backend.

Use this when:
- A meet is live and you want every query to hit the API
- Cache may be stale or corrupted
- Testing behavior without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  powertrack cache clear

  # Clear MySQL cache (set connection string via env variable)
  POWERTRACK_CACHE_BACKEND=mysql POWERTRACK_CACHE_DB_CONNECT="..." powertrack cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the meet payload cache.

Displays:
- Backend type and connection status
- Total number of cached meets
- Last and oldest cache entry timestamps
- Cache database size

Use this to:
- Verify cache is working and connected
- Check when a meet was last refreshed
- Debug cache-related issues

Examples:
  # Check cache status
  powertrack cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetMeetStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

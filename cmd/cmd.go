// Package cmd defines the command-line interface for powertrack.
package cmd

import (
	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(percentileCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("units", "kg", "Display units for table output: kg or lb")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("timeout", contract.DefaultTimeoutSeconds, "HTTP timeout in seconds for LiftingCast requests")
	rootCmd.PersistentFlags().String("api-base", contract.DefaultAPIBase, "Base URL for the LiftingCast API")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Meet cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("cache-ttl", contract.DefaultCacheTTL, "How long cached meet payloads stay fresh (0 disables cache reads)")
	rootCmd.PersistentFlags().String("history-backend", "", "Ingestion history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for ingestion history (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("csv", "", "Load the meet from a results CSV instead of the live API")
	rootCmd.PersistentFlags().String("reference-csv", "", "Historical results CSV used to build live percentiles")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of standingsCmd to Viper
	standingsCmd.Flags().StringP("gender", "g", "", "Only show one gender group: male or female")
	standingsCmd.Flags().Bool("benchmark", false, "Annotate every lifter with a historical percentile band")
	if err := viper.BindPFlags(standingsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding standings flags", err)
	}

	// Bind all flags of percentileCmd to Viper
	percentileCmd.Flags().String("lifter", "", "Name of the lifter to report on (exact or unique substring)")
	percentileCmd.Flags().String("lift", "", "Limit the report to one lift: squat, bench, deadlift, total")
	percentileCmd.Flags().String("equip", "", "Equipment class for reference grouping: raw or equipped")
	if err := viper.BindPFlags(percentileCmd.Flags()); err != nil {
		contract.LogFatal("Error binding percentile flags", err)
	}

	// Bind all flags of recentCmd to Viper
	recentCmd.Flags().Int("recent-days", contract.DefaultRecentMaxAgeDays, "Only show meets no older than this many days")
	if err := viper.BindPFlags(recentCmd.Flags()); err != nil {
		contract.LogFatal("Error binding recent flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}

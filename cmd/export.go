package cmd

import (
	"github.com/powertrackhq/powertrack/core"
	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes a full scored meet to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export [meet-id-or-url]",
	Short: "Export a scored meet to Parquet for analytics.",
	Long: `Score a full meet and write every lifter row to a Parquet file.

The export always carries all lifters in kilograms, regardless of the
display flags, so downstream tools see one consistent schema.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export a live meet
  powertrack export m12345 --output-file meet.parquet

  # Export a local CSV after scoring
  powertrack export --csv results.csv --output-file meet.parquet

  # Query the export with DuckDB
  duckdb -c "SELECT name, total_kg FROM read_parquet('meet.parquet') ORDER BY dots_points DESC LIMIT 10"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot export meet", err)
		}
	},
}

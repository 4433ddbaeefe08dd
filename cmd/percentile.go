package cmd

import (
	"github.com/powertrackhq/powertrack/core"
	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/spf13/cobra"
)

// percentileCmd places one lifter's meet results against historical data.
var percentileCmd = &cobra.Command{
	Use:   "percentile [meet-id-or-url]",
	Short: "Place one lifter against historical results.",
	Long: `Report where a lifter's numbers land against historical results.

With --reference-csv the percentiles come from that dataset, grouped by
gender, bodyweight class and equipment. Without it, a frozen national
snapshot supplies tier bands (Elite, Top 5%, and so on). Each lift gets
its own placement, plus IPF and USAPL world-record context.

Examples:
  # Full report for one lifter at a live meet
  powertrack percentile m12345 --lifter "Alex Stone"

  # Against a downloaded historical dataset
  powertrack percentile m12345 --lifter "Alex Stone" --reference-csv openpl.csv

  # Just the bench, equipped division
  powertrack percentile m12345 --lifter "Alex Stone" --lift bench --equip equipped

  # From a local meet CSV
  powertrack percentile --csv results.csv --lifter "Alex Stone" --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePercentile(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run percentile report", err)
		}
	},
}

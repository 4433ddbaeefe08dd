package cmd

import (
	"github.com/powertrackhq/powertrack/core"
	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/spf13/cobra"
)

// recentCmd lists recently active meets from the live feed.
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently created or updated meets.",
	Long: `Fetch the LiftingCast recent-meets feed and list meets worth watching.

Meets are ordered newest first. Dateless meets are kept but sort after
dated ones, and anything older than --recent-days is dropped.

Examples:
  # The default window of recent meets
  powertrack recent

  # Only meets from the last two weeks
  powertrack recent --recent-days 14

  # Machine-readable feed for scripting
  powertrack recent --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		// The feed default is smaller than the standings default, but an
		// explicit --limit always wins.
		if !cmd.Flags().Changed("limit") {
			cfg.ResultLimit = contract.DefaultRecentLimit
		}
		if err := core.ExecuteRecent(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot fetch recent meets", err)
		}
	},
}

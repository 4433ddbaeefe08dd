package cmd

import (
	"github.com/powertrackhq/powertrack/core"
	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/spf13/cobra"
)

// standingsCmd shows scored and ranked standings for one meet.
var standingsCmd = &cobra.Command{
	Use:   "standings [meet-id-or-url]",
	Short: "Show scored standings for a meet.",
	Long: `Load a meet, score every lifter and print ranked standings.

Accepts a bare LiftingCast meet id or a full liftingcast.com URL, or a
local results CSV via --csv. Each lifter gets DOTS, IPF GL and
Glossbrenner points, with places assigned per gender group by total
(ties break toward the lighter lifter).

Examples:
  # Rank a live meet by its LiftingCast id
  powertrack standings m12345

  # Same meet via a pasted URL
  powertrack standings https://liftingcast.com/meets/m12345/roster

  # Women only, top 10, pounds
  powertrack standings m12345 --gender female --limit 10 --units lb

  # Annotate every lifter with a historical percentile band
  powertrack standings m12345 --benchmark

  # Score a local spreadsheet export instead
  powertrack standings --csv results.csv --output csv --output-file scored.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStandings(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run standings", err)
		}
	},
}

package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/powertrackhq/powertrack/internal/contract"
)

// GetMaxTableNameWidth calculates the maximum width for lifter names in table
// output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config, withBands bool) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting:
	// Place + Class + BW + three bests + Total + the three point columns.
	baseWidth := 75

	if withBands {
		baseWidth += 28 // Benchmark band column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 20

	// Calculate available space for the name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 40 {
		// Maximum name width to keep rows compact
		return 40
	}
	return available
}

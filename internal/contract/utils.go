package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	WorldClassColor    = color.New(color.FgRed, color.Bold)     // rarest tier
	EliteColor         = color.New(color.FgMagenta, color.Bold) // top 5%
	InternationalColor = color.New(color.FgYellow)              // top 10%
	NationalColor      = color.New(color.FgCyan)                // top 25%
	AboveAverageColor  = color.New(color.FgGreen)               // above median
)

// ColorBandLabel applies the tier color to a percentile band label. The rank
// is the band's nominal "top N%" number; unranked and developing tiers stay
// uncolored.
func ColorBandLabel(label string, rank int) string {
	switch {
	case rank <= 1:
		return WorldClassColor.Sprint(label)
	case rank <= 5:
		return EliteColor.Sprint(label)
	case rank <= 10:
		return InternationalColor.Sprint(label)
	case rank <= 25:
		return NationalColor.Sprint(label)
	case rank <= 50:
		return AboveAverageColor.Sprint(label)
	default:
		return label
	}
}

// ColorPlace highlights podium places in table output.
func ColorPlace(place int) string {
	text := fmt.Sprintf("%d", place)
	switch place {
	case 1:
		return WorldClassColor.Sprint(text)
	case 2, 3:
		return InternationalColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for meet caching.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".powertrack_cache.db"
	}
	return filepath.Join(homeDir, ".powertrack_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for ingest history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".powertrack_history.db"
	}
	return filepath.Join(homeDir, ".powertrack_history.db")
}

// TruncateName truncates a lifter or meet name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both content
// and the ellipsis.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

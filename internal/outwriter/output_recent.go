package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/schema"
)

// PrintRecentMeets outputs the recent-meets feed, dispatching based on the
// output format configured.
func PrintRecentMeets(meets []schema.RecentMeet, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, meets)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForRecent(w, meets)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("recent")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecentTable(meets, duration, w)
		}, "Wrote table")
	}
}

// writeRecentTable generates and writes the human-readable table.
func writeRecentTable(meets []schema.RecentMeet, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Meet", "Date", "URL"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for i, m := range meets {
		date := m.Date
		if date == "" {
			date = "-"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(m.Name, 45),
			date,
			m.URL,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d meets. Completed in %v.\n", len(meets), duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRecent writes the feed in CSV format.
func writeCSVResultsForRecent(w io.Writer, meets []schema.RecentMeet) error {
	header := []string{"rank", "meet_id", "name", "date", "url", "created_at"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, m := range meets {
			createdAt := ""
			if !m.CreatedAt.IsZero() {
				createdAt = m.CreatedAt.Format(contract.DateTimeFormat)
			}
			rec := []string{
				strconv.Itoa(i + 1),
				m.ID,
				m.Name,
				m.Date,
				m.URL,
				createdAt,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

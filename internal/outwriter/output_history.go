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

// PrintHistoryRuns outputs ingestion run history, dispatching based on the
// output format configured. Parquet export of history has its own command.
func PrintHistoryRuns(runs []schema.IngestRunRecord, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForHistory(w, runs)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("history")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(runs, duration, w)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable table.
func writeHistoryTable(runs []schema.IngestRunRecord, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Run", "Meet", "Source", "Started", "Duration", "Rows"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range runs {
		data = append(data, []string{
			strconv.FormatInt(r.RunID, 10),
			r.MeetID,
			string(r.Source),
			r.StartTime.Format("2006-01-02 15:04:05"),
			formatRunDuration(r.DurationMs),
			strconv.Itoa(int(r.LifterRows)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d ingestion runs. Completed in %v.\n", len(runs), duration); err != nil {
		return err
	}
	return nil
}

// formatRunDuration renders a nullable millisecond duration; "-" means the
// run never finished.
func formatRunDuration(ms *int32) string {
	if ms == nil {
		return "-"
	}
	return (time.Duration(*ms) * time.Millisecond).String()
}

// writeCSVResultsForHistory writes the run history in CSV format.
func writeCSVResultsForHistory(w io.Writer, runs []schema.IngestRunRecord) error {
	header := []string{"run_id", "meet_id", "source", "start_time", "end_time", "duration_ms", "lifter_rows"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range runs {
			endTime := ""
			if r.EndTime != nil {
				endTime = r.EndTime.Format(contract.DateTimeFormat)
			}
			durationMs := ""
			if r.DurationMs != nil {
				durationMs = strconv.Itoa(int(*r.DurationMs))
			}
			rec := []string{
				strconv.FormatInt(r.RunID, 10),
				r.MeetID,
				string(r.Source),
				r.StartTime.Format(contract.DateTimeFormat),
				endTime,
				durationMs,
				strconv.Itoa(int(r.LifterRows)),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/internal/parquet"
	"github.com/powertrackhq/powertrack/schema"
)

// PrintStandingsResults outputs ranked standings, dispatching based on the output format configured.
func PrintStandingsResults(records []schema.LifterRecord, meta schema.MeetMetadata, bands []string, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeStandingsJSONResults(records, meta, bands, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeStandingsCSVResults(records, meta, bands, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeStandingsParquetResults(records, meta, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStandingsTable(records, meta, bands, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeStandingsJSONResults handles opening the file and calling the JSON writer.
func writeStandingsJSONResults(records []schema.LifterRecord, meta schema.MeetMetadata, bands []string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForStandings(w, records, meta, bands)
	}, "Wrote JSON")
}

// writeStandingsCSVResults handles opening the file and calling the CSV writer.
func writeStandingsCSVResults(records []schema.LifterRecord, meta schema.MeetMetadata, bands []string, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForStandings(w, records, meta, bands, fmtFloat)
	}, "Wrote CSV")
}

// writeStandingsParquetResults converts the standings and writes a Parquet file.
// Parquet is a binary format, so an explicit output file is mandatory.
func writeStandingsParquetResults(records []schema.LifterRecord, meta schema.MeetMetadata, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}
	rows := parquet.ConvertLifterRecords(records, meta)
	if err := parquet.WriteLifterRowsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d Parquet rows to %s\n", len(rows), cfg.OutputFile)
	return nil
}

// writeStandingsTable generates and writes the human-readable table.
func writeStandingsTable(records []schema.LifterRecord, meta schema.MeetMetadata, bands []string, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	unit := unitSuffix(cfg.Units)
	if meta.Name != "" {
		line := meta.Name
		if meta.Date != "" {
			line += " - " + meta.Date
		}
		if _, err := fmt.Fprintf(writer, "%s [%s]\n", line, meta.Source); err != nil {
			return err
		}
	}
	if meta.Federation != "" || meta.Equipment != "" {
		parts := make([]string, 0, 2)
		if meta.Federation != "" {
			parts = append(parts, "Federation: "+meta.Federation)
		}
		if meta.Equipment != "" {
			parts = append(parts, "Equipment: "+meta.Equipment)
		}
		if _, err := fmt.Fprintln(writer, strings.Join(parts, "  ")); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{
		"Place", "Name", "Class",
		"BW (" + unit + ")",
		"Squat", "Bench", "Dead", "Total",
		"DOTS", "IPF GL", "Gloss",
	}
	withBands := len(bands) == len(records) && len(bands) > 0
	if withBands {
		headers = append(headers, "Benchmark")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := GetMaxTableNameWidth(cfg, withBands)
	var data [][]string
	for i, r := range records {
		row := []string{
			contract.ColorPlace(r.Place),
			contract.TruncateName(r.Name, nameWidth),
			r.WeightClass,
			fmtFloat(schema.DisplayWeight(r.BodyweightKg, cfg.Units)),
			fmtFloat(schema.DisplayWeight(r.BestSquatKg, cfg.Units)),
			fmtFloat(schema.DisplayWeight(r.BestBenchKg, cfg.Units)),
			fmtFloat(schema.DisplayWeight(r.BestDeadliftKg, cfg.Units)),
			fmtFloat(schema.DisplayWeight(r.TotalKg, cfg.Units)),
			fmtFloat(r.DotsPoints),
			fmtFloat(r.IPFPoints),
			fmtFloat(r.GlossbrennerPoints),
		}
		if withBands {
			row = append(row, bands[i])
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	var totalKg float64
	for _, r := range records {
		totalKg += r.TotalKg
	}
	if _, err := fmt.Fprintf(writer, "Showing %d lifters (combined total: %s %s)\n",
		len(records), fmtFloat(schema.DisplayWeight(totalKg, cfg.Units)), unit); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForStandings writes the standings in CSV format.
func writeCSVResultsForStandings(w io.Writer, records []schema.LifterRecord, meta schema.MeetMetadata, bands []string, fmtFloat func(float64) string) error {
	// CSV and JSON stay in kilograms; unit conversion is a table-only transform.
	header := []string{
		"place",
		"name",
		"gender",
		"bodyweight_kg",
		"weight_class",
		"division",
		"equipment",
		"best_squat_kg",
		"best_bench_kg",
		"best_deadlift_kg",
		"total_kg",
		"dots_points",
		"ipf_points",
		"glossbrenner_points",
		"meet_id",
		"source",
	}
	withBands := len(bands) == len(records) && len(bands) > 0
	if withBands {
		header = append(header, "benchmark")
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, r := range records {
			rec := []string{
				strconv.Itoa(r.Place),
				r.Name,
				string(r.Gender),
				fmtFloat(r.BodyweightKg),
				r.WeightClass,
				r.Division,
				r.Equipment,
				fmtFloat(r.BestSquatKg),
				fmtFloat(r.BestBenchKg),
				fmtFloat(r.BestDeadliftKg),
				fmtFloat(r.TotalKg),
				fmtFloat(r.DotsPoints),
				fmtFloat(r.IPFPoints),
				fmtFloat(r.GlossbrennerPoints),
				meta.MeetID,
				string(meta.Source),
			}
			if withBands {
				rec = append(rec, bands[i])
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResultsForStandings writes the standings in JSON format.
func writeJSONResultsForStandings(w io.Writer, records []schema.LifterRecord, meta schema.MeetMetadata, bands []string) error {
	// 1. Prepare the data structure for JSON with band annotations folded in
	type JSONLifterRow struct {
		Benchmark string `json:"benchmark,omitempty"`
		schema.LifterRecord
	}
	type JSONStandings struct {
		Meet    schema.MeetMetadata `json:"meet"`
		Lifters []JSONLifterRow     `json:"lifters"`
	}

	withBands := len(bands) == len(records) && len(bands) > 0
	output := JSONStandings{Meet: meta, Lifters: make([]JSONLifterRow, len(records))}
	for i, r := range records {
		row := JSONLifterRow{LifterRecord: r}
		if withBands {
			row.Benchmark = bands[i]
		}
		output.Lifters[i] = row
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/schema"
)

// PrintPercentileReport outputs a lifter's percentile placement, dispatching
// based on the output format configured.
func PrintPercentileReport(report *schema.PercentileReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForPercentile(w, report, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("percentile")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePercentileText(report, cfg, fmtFloat, duration, w)
		}, "Wrote report")
	}
}

// writePercentileText renders the human-readable report, one block per lift.
func writePercentileText(report *schema.PercentileReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	unit := unitSuffix(cfg.Units)
	lifter := report.Lifter

	class := report.ClassBucket
	if class == "" {
		class = "unknown"
	}
	if _, err := fmt.Fprintf(writer, "Percentile report: %s (%s, %s class, %s)\n",
		lifter.Name, lifter.Gender, class, report.Equipment); err != nil {
		return err
	}
	if report.Meet.Name != "" {
		line := report.Meet.Name
		if report.Meet.Date != "" {
			line += " - " + report.Meet.Date
		}
		if _, err := fmt.Fprintf(writer, "Meet: %s\n", line); err != nil {
			return err
		}
	}

	for _, p := range report.Profiles {
		if _, err := fmt.Fprintf(writer, "\n%s %s %s - %s\n",
			liftDisplayName(p.Discipline),
			fmtFloat(schema.DisplayWeight(p.LiftKg, cfg.Units)), unit,
			contract.ColorBandLabel(p.Label, p.Rank)); err != nil {
			return err
		}
		if err := writeProfileDetail(p, cfg, fmtFloat, unit, writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "\nCompleted in %v.\n", duration); err != nil {
		return err
	}
	return nil
}

// writeProfileDetail prints the supporting sentences beneath one lift line.
func writeProfileDetail(p *schema.PercentileProfile, cfg *contract.Config, fmtFloat func(float64) string, unit string, writer io.Writer) error {
	switch {
	case p.HasPercentile:
		period := p.PeriodLabel
		if period == "" {
			period = "all time"
		}
		if _, err := fmt.Fprintf(writer, "  Top %s%% of %d results (%s); %d lifted at least as much\n",
			fmtFloat(100-p.Percentile), p.SampleSize, period, p.AtOrAbove); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "  Median %s %s, mean %s %s\n",
			fmtFloat(schema.DisplayWeight(p.MedianKg, cfg.Units)), unit,
			fmtFloat(schema.DisplayWeight(p.MeanKg, cfg.Units)), unit); err != nil {
			return err
		}
	case p.FromFallback:
		if _, err := fmt.Fprintf(writer, "  Placed against a frozen reference snapshot\n"); err != nil {
			return err
		}
		if p.RarityCount > 0 {
			if _, err := fmt.Fprintf(writer, "  Roughly %d lifters nationwide reach this tier\n", p.RarityCount); err != nil {
				return err
			}
		}
		if p.MedianKg > 0 {
			if _, err := fmt.Fprintf(writer, "  Median %s %s\n",
				fmtFloat(schema.DisplayWeight(p.MedianKg, cfg.Units)), unit); err != nil {
				return err
			}
		}
	default:
		if _, err := fmt.Fprintf(writer, "  No reference data for this class and lift\n"); err != nil {
			return err
		}
		return nil
	}

	if p.ThresholdKg > 0 && p.PerformanceRatio > 0 {
		if _, err := fmt.Fprintf(writer, "  Tier threshold %s %s (%.2fx)\n",
			fmtFloat(schema.DisplayWeight(p.ThresholdKg, cfg.Units)), unit, p.PerformanceRatio); err != nil {
			return err
		}
	}

	return writeRecordNotes(p, cfg, fmtFloat, unit, writer)
}

// writeRecordNotes prints the world and American record comparisons when the
// class has tracked records.
func writeRecordNotes(p *schema.PercentileProfile, cfg *contract.Config, fmtFloat func(float64) string, unit string, writer io.Writer) error {
	rec := p.Record
	if rec == nil {
		return nil
	}
	if rec.IPFRecord > 0 {
		note := fmt.Sprintf("  IPF world record %s %s (at %.1f%%)",
			fmtFloat(schema.DisplayWeight(rec.IPFRecord, cfg.Units)), unit, rec.IPFPercent)
		if rec.IsIPFRecord {
			note = fmt.Sprintf("  Exceeds the IPF world record of %s %s!",
				fmtFloat(schema.DisplayWeight(rec.IPFRecord, cfg.Units)), unit)
		}
		if _, err := fmt.Fprintln(writer, note); err != nil {
			return err
		}
	}
	if rec.USAPLRecord > 0 {
		note := fmt.Sprintf("  USAPL American record %s %s (at %.1f%%)",
			fmtFloat(schema.DisplayWeight(rec.USAPLRecord, cfg.Units)), unit, rec.USAPLPercent)
		if rec.IsUSAPLRecord {
			note = fmt.Sprintf("  Exceeds the USAPL American record of %s %s!",
				fmtFloat(schema.DisplayWeight(rec.USAPLRecord, cfg.Units)), unit)
		}
		if _, err := fmt.Fprintln(writer, note); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVResultsForPercentile writes the report in CSV format, one row per lift.
func writeCSVResultsForPercentile(w io.Writer, report *schema.PercentileReport, fmtFloat func(float64) string) error {
	header := []string{
		"lifter",
		"gender",
		"class",
		"equipment",
		"lift",
		"value_kg",
		"band",
		"rank",
		"percentile",
		"sample_size",
		"median_kg",
		"threshold_kg",
		"performance_ratio",
		"from_fallback",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range report.Profiles {
			percentile := ""
			if p.HasPercentile {
				percentile = fmtFloat(p.Percentile)
			}
			rec := []string{
				report.Lifter.Name,
				string(report.Lifter.Gender),
				report.ClassBucket,
				string(report.Equipment),
				string(p.Discipline),
				fmtFloat(p.LiftKg),
				p.Label,
				strconv.Itoa(p.Rank),
				percentile,
				strconv.Itoa(p.SampleSize),
				fmtFloat(p.MedianKg),
				fmtFloat(p.ThresholdKg),
				fmt.Sprintf("%.2f", p.PerformanceRatio),
				strconv.FormatBool(p.FromFallback),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

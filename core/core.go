// Package core has core logic for scoring, ranking and percentile placement.
package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/internal/csvload"
	"github.com/powertrackhq/powertrack/internal/liftingcast"
	"github.com/powertrackhq/powertrack/internal/outwriter"
	"github.com/powertrackhq/powertrack/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteStandings loads a meet, normalizes and ranks it, and prints the
// standings. It serves as the main entry point for the 'standings' mode.
func ExecuteStandings(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()

	records, meta, err := loadMeetRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	records = Normalize(records)
	records = filterByGender(records, cfg.GenderFilter)

	// Present gender groups together, best totals first
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Gender != records[j].Gender {
			return records[i].Gender < records[j].Gender
		}
		return records[i].Place < records[j].Place
	})
	if cfg.ResultLimit > 0 && len(records) > cfg.ResultLimit {
		records = records[:cfg.ResultLimit]
	}

	var bands []string
	if cfg.Benchmark {
		bands, err = benchmarkBands(records, cfg)
		if err != nil {
			return err
		}
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteStandings(records, meta, bands, cfg, duration)
}

// ExecuteRecent fetches the recent-meets feed and prints it.
func ExecuteRecent(ctx context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	start := time.Now()

	feed := liftingcast.NewFeed(liftingcast.NewClient(cfg.APIBase, cfg.HTTPTimeout))
	meets, err := feed.FetchRecentMeets(ctx, cfg.ResultLimit, cfg.RecentMaxAgeDays)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteRecent(meets, cfg, duration)
}

// ExecutePercentile places one lifter's results against the reference
// population and prints the report.
func ExecutePercentile(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()

	if cfg.LifterName == "" {
		return errors.New("--lifter is required for the percentile command")
	}

	records, meta, err := loadMeetRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	records = Normalize(records)

	lifter, err := findLifter(records, cfg.LifterName)
	if err != nil {
		return err
	}

	var ref *schema.ReferenceStats
	if cfg.ReferenceCSV != "" {
		ref, err = loadReferenceStats(cfg.ReferenceCSV)
		if err != nil {
			return err
		}
	}

	classBucket := schema.WeightClassBucket(lifter.BodyweightKg, lifter.Gender)
	lifts := schema.ScoredLifts
	if cfg.Lift != "" {
		lifts = []schema.Lift{cfg.Lift}
	}

	report := &schema.PercentileReport{
		Lifter:      *lifter,
		Meet:        meta,
		ClassBucket: classBucket,
		Equipment:   cfg.Equip,
	}
	for _, lift := range lifts {
		profile := EvaluatePercentile(ref, lifter.Gender, classBucket, cfg.Equip, lift, lifter.BestLift(lift))
		report.Profiles = append(report.Profiles, profile)
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WritePercentile(report, cfg, duration)
}

// ExecuteExport loads a meet and writes the normalized standings to a Parquet
// file. It is a thin wrapper over the standings pipeline with the output
// format pinned.
func ExecuteExport(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for the export command")
	}
	exportCfg := cfg.Clone()
	exportCfg.Output = schema.ParquetOut
	exportCfg.Benchmark = false
	return ExecuteStandings(ctx, exportCfg, mgr)
}

// ExecuteHistoryList prints the most recent ingestion runs.
func ExecuteHistoryList(_ context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()

	store := mgr.GetHistoryStore()
	if store == nil {
		return errors.New("history store is not initialized")
	}
	runs, err := store.ListRuns(cfg.ResultLimit)
	if err != nil {
		return fmt.Errorf("failed to list ingestion runs: %w", err)
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteHistory(runs, cfg, duration)
}

// loadMeetRecords resolves the configured data source: an uploaded CSV when
// --csv is set, otherwise the live LiftingCast API behind the meet cache.
// Every load is recorded as one ingestion run.
func loadMeetRecords(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) ([]schema.LifterRecord, schema.MeetMetadata, error) {
	start := time.Now()

	var (
		records []schema.LifterRecord
		meta    schema.MeetMetadata
		err     error
	)
	if cfg.CSVPath != "" {
		records, meta, err = csvload.LoadMeetFile(cfg.CSVPath)
	} else {
		if cfg.MeetRef == "" {
			return nil, schema.MeetMetadata{}, errors.New("a meet id or liftingcast.com URL is required")
		}
		loader := liftingcast.NewLoader(liftingcast.NewClient(cfg.APIBase, cfg.HTTPTimeout))
		records, meta, err = cachedLoadMeet(ctx, cfg, loader, mgr)
	}
	if err != nil {
		return nil, schema.MeetMetadata{}, err
	}

	recordIngestRun(mgr, meta, start, len(records))
	return records, meta, nil
}

// recordIngestRun writes one row of ingestion history. History is best-effort
// and never fails the command.
func recordIngestRun(mgr contract.CacheManager, meta schema.MeetMetadata, start time.Time, lifterRows int) {
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}
	runID, err := store.BeginRun(meta.MeetID, meta.Source, start)
	if err != nil {
		contract.LogWarn("recording ingest run", err)
		return
	}
	if err := store.EndRun(runID, time.Now(), lifterRows); err != nil {
		contract.LogWarn("finishing ingest run", err)
	}
}

// filterByGender keeps only the records matching the filter; an empty filter
// keeps everything.
func filterByGender(records []schema.LifterRecord, gender schema.Gender) []schema.LifterRecord {
	if gender == "" {
		return records
	}
	filtered := make([]schema.LifterRecord, 0, len(records))
	for _, r := range records {
		if r.Gender == gender {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// findLifter locates a lifter by name, case-insensitively. An exact match
// wins; otherwise a unique substring match is accepted.
func findLifter(records []schema.LifterRecord, name string) (*schema.LifterRecord, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	var partial *schema.LifterRecord
	partialCount := 0
	for i := range records {
		candidate := strings.ToLower(records[i].Name)
		if candidate == needle {
			return &records[i], nil
		}
		if strings.Contains(candidate, needle) {
			partial = &records[i]
			partialCount++
		}
	}
	switch partialCount {
	case 1:
		return partial, nil
	case 0:
		return nil, fmt.Errorf("lifter %q was not found in this meet", name)
	default:
		return nil, fmt.Errorf("lifter %q matches %d entries; use the full name", name, partialCount)
	}
}

// benchmarkBands evaluates each lifter's total against the reference
// population and returns one band label per record.
func benchmarkBands(records []schema.LifterRecord, cfg *contract.Config) ([]string, error) {
	var ref *schema.ReferenceStats
	if cfg.ReferenceCSV != "" {
		var err error
		ref, err = loadReferenceStats(cfg.ReferenceCSV)
		if err != nil {
			return nil, err
		}
	}

	bands := make([]string, len(records))
	for i, r := range records {
		bucket := schema.WeightClassBucket(r.BodyweightKg, r.Gender)
		profile := EvaluatePercentile(ref, r.Gender, bucket, equipmentClassOf(r.Equipment), schema.TotalLift, r.TotalKg)
		bands[i] = profile.Label
	}
	return bands, nil
}

// equipmentClassOf collapses free-text equipment onto the two benchmark
// classes. Unknown and missing equipment count as raw, the common case.
func equipmentClassOf(equipment string) schema.EquipmentClass {
	if equipment == "" || strings.EqualFold(equipment, "raw") {
		return schema.RawEquipment
	}
	return schema.EquippedEquipment
}

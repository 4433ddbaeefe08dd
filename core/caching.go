package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/internal/csvload"
	"github.com/powertrackhq/powertrack/schema"
)

// currentCacheVersion defines the version of the meet cache schema
const currentCacheVersion = 1

// cachedMeetPayload is the JSON envelope stored per meet cache entry.
type cachedMeetPayload struct {
	Records  []schema.LifterRecord `json:"records"`
	Metadata schema.MeetMetadata   `json:"metadata"`
}

// cachedLoadMeet wraps a meet source with the configured cache store.
func cachedLoadMeet(ctx context.Context, cfg *contract.Config, src contract.MeetSource, mgr contract.CacheManager) ([]schema.LifterRecord, schema.MeetMetadata, error) {
	store := mgr.GetMeetStore()
	if store == nil {
		// Fallback to a direct fetch
		return src.LoadMeet(ctx, cfg.MeetRef)
	}

	key := generateCacheKey(cfg)

	// Check for cache hit
	if records, meta, ok := checkCacheHit(store, key, cfg.CacheTTL); ok {
		return records, meta, nil
	}

	// Cache miss: fetch and store
	return fetchAndStore(ctx, cfg, src, store, key)
}

// checkCacheHit attempts to retrieve and validate a cached meet payload.
// A zero TTL disables reads entirely, forcing a live fetch.
func checkCacheHit(store contract.CacheStore, key string, ttl time.Duration) ([]schema.LifterRecord, schema.MeetMetadata, bool) {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil, schema.MeetMetadata{}, false // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion && ttl > 0 {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= ttl {
			var payload cachedMeetPayload
			if err := json.Unmarshal(data, &payload); err == nil {
				return payload.Records, payload.Metadata, true // Cache hit
			}
		}
	}

	return nil, schema.MeetMetadata{}, false // Cache miss (stale or version mismatch)
}

// fetchAndStore fetches the meet from the source and stores it in cache.
func fetchAndStore(ctx context.Context, cfg *contract.Config, src contract.MeetSource, store contract.CacheStore, key string) ([]schema.LifterRecord, schema.MeetMetadata, error) {
	records, meta, err := src.LoadMeet(ctx, cfg.MeetRef)
	if err != nil {
		return nil, schema.MeetMetadata{}, err
	}

	// Store in cache
	if data, err := json.Marshal(cachedMeetPayload{Records: records, Metadata: meta}); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return records, meta, nil
}

// generateCacheKey creates a unique key based on the fetch parameters. The
// API base is included so switching endpoints invalidates the cache.
func generateCacheKey(cfg *contract.Config) string {
	key := fmt.Sprintf("%s:%s", cfg.APIBase, cfg.MeetRef)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

var (
	refStatsMu    sync.Mutex
	refStatsCache = make(map[string]*schema.ReferenceStats)
)

// loadReferenceStats loads and aggregates a reference CSV, memoized per path
// for the life of the process. Building the distributions is expensive, and a
// single command may need them for several lifters.
func loadReferenceStats(path string) (*schema.ReferenceStats, error) {
	refStatsMu.Lock()
	defer refStatsMu.Unlock()

	if stats, ok := refStatsCache[path]; ok {
		return stats, nil
	}

	entries, err := csvload.LoadReferenceFile(path)
	if err != nil {
		return nil, err
	}

	// A nil result is cached too: no group met the sample-size floor and
	// retrying will not change that.
	stats := BuildReferenceStats(entries, path)
	refStatsCache[path] = stats
	return stats, nil
}

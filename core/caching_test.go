package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powertrackhq/powertrack/internal/contract"
	"github.com/powertrackhq/powertrack/internal/iocache"
	"github.com/powertrackhq/powertrack/schema"
)

// stubMeetSource counts loads and returns a fixed meet.
type stubMeetSource struct {
	calls   int
	records []schema.LifterRecord
	meta    schema.MeetMetadata
	err     error
}

func (s *stubMeetSource) LoadMeet(_ context.Context, _ string) ([]schema.LifterRecord, schema.MeetMetadata, error) {
	s.calls++
	return s.records, s.meta, s.err
}

func cacheTestConfig() *contract.Config {
	return &contract.Config{
		MeetRef:  "m1",
		APIBase:  "https://liftingcast.com",
		CacheTTL: 10 * time.Minute,
	}
}

func newMeetStoreManager(t *testing.T) *iocache.MockCacheManager {
	t.Helper()
	store, err := iocache.NewCacheStore("test_meet_cache", schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetMeetStore").Return(store)
	return mgr
}

func TestCachedLoadMeetMissThenHit(t *testing.T) {
	src := &stubMeetSource{
		records: []schema.LifterRecord{{Name: "Alex Stone", Gender: schema.Male, TotalKg: 600}},
		meta:    schema.MeetMetadata{MeetID: "m1", Name: "Spring Classic", Source: schema.LiftingCastSource},
	}
	cfg := cacheTestConfig()
	mgr := newMeetStoreManager(t)

	records, meta, err := cachedLoadMeet(context.Background(), cfg, src, mgr)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, "Spring Classic", meta.Name)
	require.Len(t, records, 1)

	// Second call within the TTL never touches the source
	records, meta, err = cachedLoadMeet(context.Background(), cfg, src, mgr)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, "Spring Classic", meta.Name)
	assert.Equal(t, "Alex Stone", records[0].Name)
}

func TestCachedLoadMeetZeroTTLAlwaysFetches(t *testing.T) {
	src := &stubMeetSource{meta: schema.MeetMetadata{MeetID: "m1"}}
	cfg := cacheTestConfig()
	cfg.CacheTTL = 0
	mgr := newMeetStoreManager(t)

	_, _, err := cachedLoadMeet(context.Background(), cfg, src, mgr)
	require.NoError(t, err)
	_, _, err = cachedLoadMeet(context.Background(), cfg, src, mgr)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCachedLoadMeetNilStoreFallsThrough(t *testing.T) {
	src := &stubMeetSource{meta: schema.MeetMetadata{MeetID: "m1"}}
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetMeetStore").Return(nil)

	_, _, err := cachedLoadMeet(context.Background(), cacheTestConfig(), src, mgr)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
}

func TestCachedLoadMeetSourceErrorNotCached(t *testing.T) {
	src := &stubMeetSource{err: fmt.Errorf("boom")}
	cfg := cacheTestConfig()
	mgr := newMeetStoreManager(t)

	_, _, err := cachedLoadMeet(context.Background(), cfg, src, mgr)
	assert.Error(t, err)

	_, _, err = cachedLoadMeet(context.Background(), cfg, src, mgr)
	assert.Error(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestGenerateCacheKey(t *testing.T) {
	cfg := cacheTestConfig()
	key1 := generateCacheKey(cfg)

	cfg.MeetRef = "m2"
	key2 := generateCacheKey(cfg)
	assert.NotEqual(t, key1, key2)

	cfg.MeetRef = "m1"
	cfg.APIBase = "https://staging.liftingcast.com"
	key3 := generateCacheKey(cfg)
	assert.NotEqual(t, key1, key3)

	cfg.APIBase = "https://liftingcast.com"
	assert.Equal(t, key1, generateCacheKey(cfg))
}

// writeReferenceCSV writes a reference CSV with enough 93-class male rows to
// clear the sample-size floor.
func writeReferenceCSV(t *testing.T, rows int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("Sex,Event,Equipment,BodyweightKg,WeightClassKg,Best3SquatKg,Best3BenchKg,Best3DeadliftKg,TotalKg,Date\n")
	for i := 0; i < rows; i++ {
		total := 500 + i
		fmt.Fprintf(&b, "M,SBD,Raw,92.0,93,%d,%d,%d,%d,2021-06-%02d\n",
			total*40/100, total*25/100, total*35/100, total, i%28+1)
	}

	path := filepath.Join(t.TempDir(), "reference.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestLoadReferenceStatsMemoized(t *testing.T) {
	path := writeReferenceCSV(t, 60)

	first, err := loadReferenceStats(path)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := loadReferenceStats(path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	group := first.GetStats(schema.Male, "93", schema.RawEquipment, schema.TotalLift)
	require.NotNil(t, group)
	assert.Equal(t, 60, group.Count)
}

func TestLoadReferenceStatsMissingFile(t *testing.T) {
	_, err := loadReferenceStats(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

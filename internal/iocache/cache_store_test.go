package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powertrackhq/powertrack/schema"
)

func TestCacheStoreSetAndGet(t *testing.T) {
	store, err := NewCacheStore("test_meet_cache", schema.SQLiteBackend, ":memory:")
	require.NoError(t, err, "Failed to create SQLite store")
	defer func() { _ = store.Close() }()

	payload := []byte(`{"rows": 42}`)
	ts := time.Now().Unix()
	require.NoError(t, store.Set("meet:m1", payload, 1, ts))

	value, version, gotTs, err := store.Get("meet:m1")
	require.NoError(t, err)
	assert.Equal(t, payload, value)
	assert.Equal(t, 1, version)
	assert.Equal(t, ts, gotTs)
}

func TestCacheStoreOverwrite(t *testing.T) {
	store, err := NewCacheStore("test_meet_cache", schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("meet:m1", []byte("old"), 1, 100))
	require.NoError(t, store.Set("meet:m1", []byte("new"), 2, 200))

	value, version, ts, err := store.Get("meet:m1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(200), ts)
}

func TestCacheStoreMissingKey(t *testing.T) {
	store, err := NewCacheStore("test_meet_cache", schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, _, _, err = store.Get("meet:never-set")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCacheStoreNoneBackend(t *testing.T) {
	store, err := NewCacheStore("test_meet_cache", schema.NoneBackend, "")
	require.NoError(t, err, "Failed to create None store")
	defer func() { _ = store.Close() }()

	// Set is a no-op and Get always misses
	require.NoError(t, store.Set("meet:m1", []byte("data"), 1, 100))
	_, _, _, err = store.Get("meet:m1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)
}

func TestCacheStoreRejectsBadTableName(t *testing.T) {
	_, err := NewCacheStore("bad; DROP TABLE", schema.SQLiteBackend, ":memory:")
	assert.Error(t, err)

	_, err = NewCacheStore("", schema.SQLiteBackend, ":memory:")
	assert.Error(t, err)
}

func TestCacheStoreRejectsUnknownBackend(t *testing.T) {
	_, err := NewCacheStore("test_meet_cache", schema.DatabaseBackend("oracle"), "")
	assert.ErrorContains(t, err, "unsupported cache backend")
}

func TestCacheStoreGetStatus(t *testing.T) {
	t.Run("SQLite backend with data", func(t *testing.T) {
		store, err := NewCacheStore("test_status_table", schema.SQLiteBackend, ":memory:")
		require.NoError(t, err, "Failed to create SQLite store")
		defer func() { _ = store.Close() }()

		now := time.Now().Unix()
		require.NoError(t, store.Set("k1", []byte("v1"), 1, now-60))
		require.NoError(t, store.Set("k2", []byte("v2"), 1, now))

		status, err := store.GetStatus()
		require.NoError(t, err, "GetStatus should not fail")

		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, 2, status.TotalEntries)
		assert.Equal(t, time.Unix(now, 0), status.LastEntryTime)
		assert.Equal(t, time.Unix(now-60, 0), status.OldestEntryTime)
		assert.Greater(t, status.TableSizeBytes, int64(0))
	})

	t.Run("SQLite backend without data", func(t *testing.T) {
		store, err := NewCacheStore("test_status_empty", schema.SQLiteBackend, ":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.True(t, status.Connected)
		assert.Zero(t, status.TotalEntries)
		assert.True(t, status.LastEntryTime.IsZero())
	})
}

func TestCacheStorePersistsToFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "meet_cache.db")

	store, err := NewCacheStore("test_meet_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("meet:m1", []byte("payload"), 3, 500))
	require.NoError(t, store.Close())

	// Reopen and expect the entry to survive
	store, err = NewCacheStore("test_meet_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	value, version, ts, err := store.Get("meet:m1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
	assert.Equal(t, 3, version)
	assert.Equal(t, int64(500), ts)
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "meet_cache.db")

	store, err := NewCacheStore("test_meet_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("meet:m1", []byte("payload"), 1, 100))
	require.NoError(t, store.Close())

	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	assert.NoFileExists(t, dbPath)

	// Clearing again is fine; the file is already gone
	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// Empty path is rejected
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
}

// Package iocache is for caching I/O calls and recording ingestion history.
package iocache

import (
	"sync"

	"github.com/powertrackhq/powertrack/internal/contract"
)

// CacheStoreManager manages the meet payload cache and the ingestion history
// store.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	meet         contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetMeetStore returns the meet payload CacheStore.
func (mgr *CacheStoreManager) GetMeetStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.meet
}

// GetHistoryStore returns the ingestion HistoryStore.
func (mgr *CacheStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}

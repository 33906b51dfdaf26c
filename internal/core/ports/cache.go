package ports

import (
	"time"

	"go.trai.ch/leap/internal/core/domain"
)

// Cache defines the interface for the TTL+LRU key/value store.
//
// All operations absorb internal failures: Set reports false instead of
// returning an error, lookups degrade to a miss. Cache failures never
// propagate to callers.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// Set inserts or overwrites an entry. A non-positive ttl falls back to
	// the store default. When the store is at capacity and key is new, the
	// globally least-recently-used entry is evicted first.
	Set(key string, data any, ttl time.Duration) bool

	// Get returns the value if present and unexpired. An expired entry is
	// deleted as a side effect. A hit refreshes the access timestamp.
	Get(key string) (any, bool)

	// Has reports presence with the same expiry semantics as Get, but
	// without refreshing the access timestamp.
	Has(key string) bool

	// Delete removes an entry, reporting whether it existed.
	Delete(key string) bool

	// Clear removes all entries.
	Clear()

	// Len returns the number of live entries.
	Len() int

	// Stats returns a snapshot of the hit/miss/eviction counters.
	Stats() domain.CacheStats
}

// Package cache implements the TTL+LRU key/value store backing settings,
// path and editor-state lookups.
package cache

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultCapacity bounds the store size; inserting beyond it evicts the
	// least-recently-used entry.
	DefaultCapacity = 500

	// DefaultTTL applies when Set is called with a non-positive ttl.
	DefaultTTL = 5 * time.Minute

	// sweepSchedule drives the periodic expiry scan. The sweep bounds
	// growth from keys that are written but never read again.
	sweepSchedule = "@every 30s"
)

type entry struct {
	data     any
	storedAt time.Time
	ttl      time.Duration
}

// Store implements ports.Cache.
//
// Entries and access timestamps are kept in lockstep: every insert, delete
// and eviction updates both maps under one lock.
type Store struct {
	mu         sync.Mutex
	logger     ports.Logger
	entries    map[string]*entry
	access     map[string]time.Time
	capacity   int
	defaultTTL time.Duration
	sweeper    *cron.Cron
	closed     bool
	stats      domain.CacheStats
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCapacity overrides the maximum entry count.
func WithCapacity(n int) StoreOption {
	return func(s *Store) { s.capacity = n }
}

// WithDefaultTTL overrides the fallback TTL for Set calls without one.
func WithDefaultTTL(d time.Duration) StoreOption {
	return func(s *Store) { s.defaultTTL = d }
}

// NewStore creates a started store. The caller owns its lifecycle and must
// call Stop on shutdown to cancel the sweeper.
func NewStore(logger ports.Logger, opts ...StoreOption) (*Store, error) {
	s := &Store{
		logger:     logger,
		entries:    make(map[string]*entry),
		access:     make(map[string]time.Time),
		capacity:   DefaultCapacity,
		defaultTTL: DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.capacity < 1 {
		return nil, zerr.With(zerr.New("cache capacity must be positive"), "capacity", s.capacity)
	}
	if err := domain.ValidateTTL(s.defaultTTL); err != nil {
		return nil, err
	}

	s.sweeper = cron.New(cron.WithChain(cron.Recover(newCronLogger(logger))))
	if _, err := s.sweeper.AddFunc(sweepSchedule, s.sweep); err != nil {
		return nil, zerr.Wrap(err, "failed to schedule cache sweep")
	}
	s.sweeper.Start()

	return s, nil
}

// Set inserts or overwrites an entry. It never fails with an error:
// problems are logged and reported as false.
func (s *Store) Set(key string, data any, ttl time.Duration) bool {
	if key == "" {
		s.logger.Warn("cache: ignoring set with empty key")
		return false
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Warn("cache: set on closed store")
		return false
	}

	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.capacity {
		s.evictLocked()
	}

	now := time.Now()
	s.entries[key] = &entry{data: data, storedAt: now, ttl: ttl}
	s.access[key] = now
	s.stats.Sets++
	return true
}

// Get returns the value if present and unexpired. Expired entries are
// deleted as a side effect. A hit refreshes the access timestamp.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false
	}

	e, ok := s.entries[key]
	if !ok {
		s.stats.Misses++
		return nil, false
	}

	now := time.Now()
	if now.Sub(e.storedAt) > e.ttl {
		s.removeLocked(key)
		s.stats.Expirations++
		s.stats.Misses++
		return nil, false
	}

	s.access[key] = now
	s.stats.Hits++
	return e.data, true
}

// Has reports presence with Get's expiry semantics but does not refresh
// the access timestamp and does not count towards hit/miss stats.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	if time.Since(e.storedAt) > e.ttl {
		s.removeLocked(key)
		s.stats.Expirations++
		return false
	}
	return true
}

// Delete removes an entry, reporting whether it existed.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}
	s.removeLocked(key)
	return true
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry)
	s.access = make(map[string]time.Time)
}

// Len returns the number of live entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats returns a snapshot of the counters.
func (s *Store) Stats() domain.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.stats
	snapshot.Entries = len(s.entries)
	return snapshot
}

// Stop cancels the sweeper and clears the store. It blocks until the
// sweeper has shut down. Safe to call more than once.
func (s *Store) Stop() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.entries = make(map[string]*entry)
	s.access = make(map[string]time.Time)
	s.mu.Unlock()

	<-s.sweeper.Stop().Done()
}

// sweep scans all entries and deletes expired ones, independent of access
// patterns.
func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	now := time.Now()
	for key, e := range s.entries {
		if now.Sub(e.storedAt) > e.ttl {
			s.removeLocked(key)
			s.stats.Expirations++
		}
	}
}

// evictLocked removes the entry with the oldest access timestamp.
func (s *Store) evictLocked() {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for key, ts := range s.access {
		if !found || ts.Before(oldest) {
			victim, oldest, found = key, ts, true
		}
	}
	if found {
		s.removeLocked(victim)
		s.stats.Evictions++
	}
}

// removeLocked deletes the entry and its access timestamp together.
func (s *Store) removeLocked(key string) {
	delete(s.entries, key)
	delete(s.access, key)
}

// cronLogger adapts ports.Logger to the cron.Logger interface used by the
// sweep recovery chain.
type cronLogger struct {
	logger ports.Logger
}

func newCronLogger(logger ports.Logger) cronLogger {
	return cronLogger{logger: logger}
}

func (c cronLogger) Info(string, ...any) {
	// Scheduling chatter is not worth a log line.
}

func (c cronLogger) Error(err error, msg string, _ ...any) {
	c.logger.Error(zerr.Wrap(err, msg))
}

package store

import (
	"fmt"
	"sync"
	"time"
)

// DefaultMaxItems is the soft capacity used when none is configured
// (or when a non-positive one is).
const DefaultMaxItems = 500

// now is a small indirection to allow test stubbing if needed.
var now = time.Now

// entry stores a value together with its absolute expiration timestamp.
// Every entry expires: a zero or negative TTL at write time yields an
// entry that is already stale when stored.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process key-value store with per-entry TTL and an
// append-only audit log. It is safe for concurrent use: every operation
// runs as a single critical section.
//
// Capacity is a trigger, not a bound. When a write pushes the item count
// past the configured maximum, the store runs a synchronous sweep of
// expired entries before returning; unexpired entries are never evicted,
// so the store can exceed its capacity as long as its contents are live.
type Store[V any] struct {
	mu       sync.Mutex
	items    map[string]entry[V]
	maxItems int

	// ready gates mutating operations. Construction always ends ready;
	// the check in Set is kept as a contract for future asynchronous
	// initialization.
	ready bool

	audit   []LogEntry
	sink    Sink
	sweeper *sweeper
}

// New constructs a ready Store. The effective capacity is recorded as the
// first audit entry.
func New[V any](opts ...Option) *Store[V] {
	cfg := config{maxItems: DefaultMaxItems}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxItems <= 0 {
		cfg.maxItems = DefaultMaxItems
	}

	s := &Store[V]{
		items:    make(map[string]entry[V]),
		maxItems: cfg.maxItems,
		sink:     cfg.sink,
	}
	s.logLocked(LevelInfo, fmt.Sprintf("store initialized with capacity %d", cfg.maxItems))
	s.ready = true

	if cfg.sweepInterval > 0 {
		s.sweeper = newSweeper(cfg.sweepInterval)
		s.sweeper.run(s)
	}
	return s
}

// Set stores value under key with the given TTL, overwriting any previous
// entry (last write wins). A TTL <= 0 stores an entry that is already
// expired. Returns false, without mutating anything, only when the store
// is not ready.
func (s *Store[V]) Set(key string, value V, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		s.logLocked(LevelError, fmt.Sprintf("set %q rejected: store not ready", key))
		return false
	}

	expiresAt := now().Add(ttl)
	s.items[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.logLocked(LevelInfo, fmt.Sprintf("set %q, expires at %s", key, expiresAt.Format(time.RFC3339)))

	if len(s.items) > s.maxItems {
		s.cleanupLocked()
	}
	return true
}

// Get returns the live value stored under key. An entry found expired is
// removed on the spot, so callers never observe a stale value regardless
// of when the last sweep ran.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.items[key]
	if !ok {
		s.logLocked(LevelNotice, fmt.Sprintf("miss %q", key))
		return zero, false
	}
	if !e.expiresAt.After(now()) {
		delete(s.items, key)
		s.logLocked(LevelWarning, fmt.Sprintf("expired %q, removed", key))
		return zero, false
	}
	s.logLocked(LevelDebug, fmt.Sprintf("hit %q", key))
	return e.value, true
}

// Delete removes the entry under key, reporting whether one was present.
// Deleting an absent key is a no-op and appends nothing to the audit log.
func (s *Store[V]) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return false
	}
	delete(s.items, key)
	s.logLocked(LevelInfo, fmt.Sprintf("deleted %q", key))
	return true
}

// CleanupExpired scans the whole store and removes every entry whose
// expiration lies at or before the instant the scan started. Entries
// expiring mid-scan are judged against that single instant. Returns the
// number of entries removed.
func (s *Store[V]) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleanupLocked()
}

func (s *Store[V]) cleanupLocked() int {
	s.logLocked(LevelInfo, "cleanup started")

	cutoff := now()
	var stale []string
	for k, e := range s.items {
		if !e.expiresAt.After(cutoff) {
			stale = append(stale, k)
		}
	}
	for _, k := range stale {
		delete(s.items, k)
	}

	s.logLocked(LevelInfo, fmt.Sprintf("cleanup finished, removed %d entries", len(stale)))
	return len(stale)
}

// AuditLog returns a snapshot of the audit log. Mutating the returned
// slice does not affect the store.
func (s *Store[V]) AuditLog() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LogEntry, len(s.audit))
	copy(out, s.audit)
	return out
}

// Len returns the number of entries currently held, including expired
// entries that no read or sweep has collected yet.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Ready reports whether the store accepts writes.
func (s *Store[V]) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Close stops the background sweeper, if one was configured. The store
// itself remains usable; lazy expiry on read does not depend on the
// sweeper.
func (s *Store[V]) Close() {
	if s.sweeper != nil {
		s.sweeper.stop()
	}
}

package storage

import (
	"fmt"
	"sync"

	"hlcstore/internal/hlc"
)

// VersionedValue represents a value with the timestamp that produced it.
type VersionedValue struct {
	Value   []byte
	Stamp   hlc.Timestamp
	Deleted bool // True if this is a tombstone (deleted)
}

// IsTombstone checks if this is a deletion tombstone.
func (vv *VersionedValue) IsTombstone() bool {
	return vv.Deleted
}

// Store defines the interface for key-value storage.
type Store interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(key string) *VersionedValue
	// Put stores a value stamped with a fresh local timestamp and
	// returns the stamp.
	Put(key string, value []byte) hlc.Timestamp
	// Delete stores a tombstone for the key and returns its stamp.
	Delete(key string) hlc.Timestamp
	// Apply folds in a write received from another node, keeping the
	// exact remote stamp. The older write loses; the local clock observes
	// the stamp either way.
	Apply(key string, value []byte, stamp hlc.Timestamp, deleted bool) error
}

// InMemoryStore is an in-memory implementation of Store. It is thread-safe;
// its mutex also serializes access to the owned clock, which is not safe for
// unsynchronized concurrent use on its own.
type InMemoryStore struct {
	mu    sync.RWMutex
	data  map[string]*VersionedValue
	clock *hlc.Clock
}

// NewInMemoryStore creates a new in-memory store around the node's clock.
// The store takes ownership of the clock: callers must not use it directly
// while the store is live.
func NewInMemoryStore(clock *hlc.Clock) *InMemoryStore {
	return &InMemoryStore{
		data:  make(map[string]*VersionedValue),
		clock: clock,
	}
}

// Get retrieves a value by key.
func (s *InMemoryStore) Get(key string) *VersionedValue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vv, exists := s.data[key]
	if !exists {
		return nil
	}

	// Return a copy to avoid external modifications
	return &VersionedValue{
		Value:   append([]byte(nil), vv.Value...),
		Stamp:   vv.Stamp,
		Deleted: vv.Deleted,
	}
}

// Put stores a value under a fresh stamp from the local clock. The new stamp
// exceeds every stamp previously issued or applied here, so a local write
// wins over everything this node has already seen.
func (s *InMemoryStore) Put(key string, value []byte) hlc.Timestamp {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.clock.Now()
	s.data[key] = &VersionedValue{
		Value: append([]byte(nil), value...),
		Stamp: stamp,
	}
	return stamp
}

// Delete stores a tombstone instead of removing the key, so the deletion can
// still win against older writes arriving later from other nodes.
func (s *InMemoryStore) Delete(key string) hlc.Timestamp {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.clock.Now()
	s.data[key] = &VersionedValue{
		Stamp:   stamp,
		Deleted: true,
	}
	return stamp
}

// Apply folds in a write from another node. The remote stamp is observed on
// the local clock first, which preserves causality: any local write after
// Apply is stamped strictly after the remote one. The value is kept only if
// its stamp is newer than what is already stored.
func (s *InMemoryStore) Apply(key string, value []byte, stamp hlc.Timestamp, deleted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stamp.Node == s.clock.Node() {
		return fmt.Errorf("apply for key %q: stamp claims local node %d", key, stamp.Node)
	}

	s.clock.Observe(stamp)

	if existing, exists := s.data[key]; exists && !stamp.After(existing.Stamp) {
		// Older or duplicate write, skip (best effort).
		return nil
	}

	var valueCopy []byte
	if !deleted {
		valueCopy = append([]byte(nil), value...)
	}
	s.data[key] = &VersionedValue{
		Value:   valueCopy,
		Stamp:   stamp, // Store exact stamp, no increment
		Deleted: deleted,
	}
	return nil
}

// Stamp mints a timestamp from the store's clock without writing anything.
// Useful for tagging outbound messages under the store's serialization.
func (s *InMemoryStore) Stamp() hlc.Timestamp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Now()
}

// Keys returns the stored keys (tombstones included) in no particular order.
func (s *InMemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Package cache defines the memoizing store the service layer wraps around
// holiday sets and next-occurrence lookups.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Cache stores opaque encoded values with a time-to-live.
// A miss is (nil, false, nil); an error means the store itself failed.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key joins parts into a stable cache key, e.g. Key("holidays", "US", "2025").
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// purgeEvery is how many Set calls pass between sweeps of expired entries.
const purgeEvery = 1024

// Memory is an in-process Cache safe for concurrent use. Expired entries
// are dropped when read and swept every purgeEvery writes.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	writes  int
	now     func() time.Time
}

// NewMemory returns an empty Memory cache using the wall clock.
func NewMemory() *Memory {
	return NewMemoryWithClock(time.Now)
}

// NewMemoryWithClock is NewMemory with an injectable clock for tests.
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{entries: make(map[string]entry), now: now}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if m.expired(e) {
		m.mu.Lock()
		// A concurrent Set may have replaced it.
		if cur, ok := m.entries[key]; ok && m.expired(cur) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set stores a copy of value. A ttl <= 0 never expires.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.writes++
	if m.writes%purgeEvery == 0 {
		m.purgeLocked()
	}
	m.mu.Unlock()
	return nil
}

// Len counts stored entries, expired ones included until read or purged.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Purge drops expired entries and returns how many were removed.
func (m *Memory) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.purgeLocked()
}

func (m *Memory) purgeLocked() int {
	n := 0
	for k, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, k)
			n++
		}
	}
	return n
}

func (m *Memory) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}

// Nop never stores anything; every Get is a miss.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }

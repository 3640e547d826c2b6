package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Service is a process-local key/value cache with a per-entry TTL.
// All mutation is synchronous under the mutex; the compute callback of
// GetOrSet runs outside the lock, so concurrent misses on the same key
// may each compute (no single-flight — recomputes are idempotent).
type Service struct {
	mu      sync.RWMutex
	entries map[string]entry

	hits   uint64
	misses uint64

	janitorStop chan struct{}
	janitorOnce sync.Once
}

type Stats struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	HitRate float64 `json:"hit_rate"`
	Size    int     `json:"size"`
}

// New creates a cache and starts a background janitor that sweeps expired
// entries every interval. The janitor runs on a goroutine, so it never
// keeps the process alive; Close stops it early.
func New(janitorInterval time.Duration) *Service {
	s := &Service{
		entries:     make(map[string]entry),
		janitorStop: make(chan struct{}),
	}
	if janitorInterval > 0 {
		go s.janitor(janitorInterval)
	}
	return s
}

func (s *Service) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.janitorStop:
			return
		}
	}
}

func (s *Service) evictExpired() {
	now := time.Now()
	s.mu.Lock()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()
}

func (s *Service) Close() {
	s.janitorOnce.Do(func() { close(s.janitorStop) })
}

// Get returns the live value for key. Expired entries read as misses and
// are removed lazily.
func (s *Service) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok && time.Now().After(e.expiresAt) {
		s.mu.Lock()
		// re-check: a fresher Set may have replaced the entry
		if cur, still := s.entries[key]; still && time.Now().After(cur.expiresAt) {
			delete(s.entries, key)
		}
		ok = false
		s.mu.Unlock()
	}

	s.mu.Lock()
	if ok {
		s.hits++
	} else {
		s.misses++
	}
	s.mu.Unlock()

	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. An existing entry and its deadline
// are overwritten.
func (s *Service) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
}

// GetOrSet returns the cached value, or computes, stores and returns it.
// A failed compute is returned uncached so the next caller retries.
func (s *Service) GetOrSet(ctx context.Context, key string, compute func(ctx context.Context) (interface{}, error), ttl time.Duration) (interface{}, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	s.Set(key, v, ttl)
	return v, nil
}

func (s *Service) Del(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Service) Has(key string) bool {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	return ok && !time.Now().After(e.expiresAt)
}

// Clear evicts everything.
func (s *Service) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

// InvalidatePattern deletes all keys matching a *-wildcard glob and
// returns how many were removed.
func (s *Service) InvalidatePattern(pattern string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.entries {
		if ok, err := path.Match(pattern, k); err == nil && ok {
			delete(s.entries, k)
			n++
		}
	}
	return n
}

// Keys enumerates live keys (debug).
func (s *Service) Keys() []string {
	now := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k, e := range s.entries {
		if !now.After(e.expiresAt) {
			keys = append(keys, k)
		}
	}
	return keys
}

func (s *Service) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Hits: s.hits, Misses: s.misses, Size: len(s.entries)}
	if total := s.hits + s.misses; total > 0 {
		st.HitRate = float64(s.hits) / float64(total)
	}
	return st
}

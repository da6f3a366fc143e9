package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

type memoryEntry struct {
	chart     *Chart
	expiresAt time.Time
}

// MemoryStore is an in-process TTL cache. A janitor goroutine drops
// expired entries until Close is called.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryEntry
	ttl   time.Duration
	now   func() time.Time

	stop chan struct{}
	once sync.Once
}

// NewMemoryStore starts a store whose entries live for ttl.
// sweep is the janitor interval; zero disables the janitor.
func NewMemoryStore(ttl, sweep time.Duration) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]*memoryEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if sweep > 0 {
		go s.cleanup(sweep)
	}
	return s
}

func (s *MemoryStore) Save(_ context.Context, c *Chart) error {
	if c == nil || c.ID == "" {
		return errors.New("chart must have an id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[c.ID] = &memoryEntry{
		chart:     c,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	if !ok || s.now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	return e.chart, nil
}

// Len counts stored entries, including expired ones not yet swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.items {
		if now.After(e.expiresAt) {
			delete(s.items, id)
		}
	}
}

func (s *MemoryStore) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

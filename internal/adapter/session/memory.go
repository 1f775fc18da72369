package session

import (
	"context"
	"sync"
	"time"
)

// sweepInterval is the minimum time between two scans for expired entries.
const sweepInterval = time.Minute

type memoryEntry struct {
	data    Data
	expires time.Time
}

// MemoryStore keeps sessions in process memory. It is meant for a single
// instance and for tests; sessions are lost on restart. Expired entries are
// dropped when read and by a sweep that Set runs at most once per
// sweepInterval, so sessions that are never presented again do not pile up.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, id)
		return nil, nil
	}
	data := e.data
	data.Flashes = append([]Flash(nil), e.data.Flashes...)
	return &data, nil
}

func (s *MemoryStore) Set(_ context.Context, id string, data Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}
	data.Flashes = append([]Flash(nil), data.Flashes...)
	s.entries[id] = memoryEntry{data: data, expires: now.Add(ttl)}
	return nil
}

// sweep removes every entry expired at now. The caller holds mu.
func (s *MemoryStore) sweep(now time.Time) {
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	state   *State
	expires time.Time
}

// MemoryStore keeps session state in process memory. Entries expire after
// the idle TTL; expired entries are invisible to Get and removed by Sweep.
type MemoryStore struct {
	mu       sync.Mutex
	entries  map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
	onChange func(n int)
}

// NewMemoryStore creates a memory store with the given idle TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// OnChange registers a callback invoked with the entry count after every
// insert or removal.
func (s *MemoryStore) OnChange(fn func(n int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Get returns a copy of the stored state.
func (s *MemoryStore) Get(_ context.Context, id string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expires) {
		return nil, nil
	}
	return e.state.Clone(), nil
}

// Put stores a copy of st and restarts its TTL.
func (s *MemoryStore) Put(_ context.Context, id string, st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.entries[id]
	s.entries[id] = memoryEntry{state: st.Clone(), expires: s.now().Add(s.ttl)}
	if !existed {
		s.notify()
	}
	return nil
}

// Delete removes the state for id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; ok {
		delete(s.entries, id)
		s.notify()
	}
	return nil
}

// Len returns the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes expired entries and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
			removed++
		}
	}
	if removed > 0 {
		s.notify()
	}
	return removed
}

// Run sweeps expired entries every interval until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// notify must be called with mu held.
func (s *MemoryStore) notify() {
	if s.onChange != nil {
		s.onChange(len(s.entries))
	}
}

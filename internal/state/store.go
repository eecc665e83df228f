package state

import (
	"sync"
	"time"

	"github.com/five82/shopfilter/internal/filters"
)

// Snapshot represents the latest filter set available to consumers.
type Snapshot struct {
	Filters     filters.Shared
	HasFilters  bool
	Version     uint64 // Incremented on every publish
	PublishedAt time.Time
}

// Store coordinates publishes of the resolved filter set and fans them out to
// subscribers. The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	subs     map[int]chan Snapshot
	nextID   int
}

// Publish replaces the stored filter set and notifies subscribers. A
// subscriber that has not drained its previous value gets the newer one
// instead; publishers never block.
func (s *Store) Publish(f filters.Shared) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{
		Filters:     f,
		HasFilters:  true,
		Version:     s.snapshot.Version + 1,
		PublishedAt: time.Now(),
	}
	for _, ch := range s.subs {
		deliver(ch, s.snapshot)
	}
	return s.snapshot
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe returns a channel receiving every publish after the call, and a
// cancel func that closes it. The channel holds at most one pending value.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]chan Snapshot)
	}
	id := s.nextID
	s.nextID++
	ch := make(chan Snapshot, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func deliver(ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	// Drop the stale pending value.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

package lineage

import "sync"

// Store holds the active lineage snapshot. Loading is the single
// asynchronous boundary: writers replace the snapshot wholesale and readers
// only ever see complete graphs.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(snap *Snapshot) *Store {
	if snap == nil {
		snap = &Snapshot{}
	}
	return &Store{snap: snap}
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Replace swaps in a new snapshot. A nil snapshot is ignored.
func (s *Store) Replace(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

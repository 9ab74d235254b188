package state

import (
	"sync"
	"time"

	"gantry/internal/probe"
)

// Snapshot represents the latest backend health data available to the UI.
type Snapshot struct {
	Health              probe.Result
	HasHealth           bool
	LastChecked         time.Time
	ConsecutiveFailures int // consecutive non-ready polls since the last ready one
}

// IsDegraded returns true when the backend has missed multiple consecutive
// health polls after having been ready.
func (s Snapshot) IsDegraded() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The monitor poller
// is the sole writer; the UI only reads copies.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored health result.
func (s *Store) Update(result probe.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Health = result
	s.snapshot.HasHealth = true
	s.snapshot.LastChecked = time.Now()
	if result.Ok() {
		s.snapshot.ConsecutiveFailures = 0
	} else {
		s.snapshot.ConsecutiveFailures++
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

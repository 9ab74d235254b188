// Package state provides the thread-safe health snapshot shared between
// the monitor poller and the UI.
//
// # Overview
//
// Once the backend is ready, a background poller keeps checking its health
// endpoint and records the latest result here. The UI reads copies at its
// own refresh rate. The Store is the only coordination point between those
// two goroutines.
//
// # Concurrency Model
//
// Single writer, multiple readers, guarded by a sync.RWMutex:
//
//   - Update(): write lock; called only from the monitor poller
//   - Snapshot(): read lock; called from the UI refresh tick
//
// Snapshots are returned by value, so the UI can never mutate shared state.
// The lock is held only while copying, never during network I/O.
//
// # Degradation
//
// ConsecutiveFailures counts non-ready polls since the last ready one. A
// single failed poll is usually a transient hiccup; the UI only flags the
// backend as degraded after two in a row.
//
// The zero-value Store is ready to use; Snapshot() before any Update
// returns a Snapshot with HasHealth false.
package state

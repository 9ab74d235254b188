// Package ui implements the launcher's terminal interface with Bubble Tea.
//
// # Overview
//
// The UI has three views:
//
//   - splash: logo, spinner, and the readiness status line, shown while
//     the backend boots
//   - main: a thin monitor shown once the backend is ready — URL, pid,
//     uptime, live health state, and the tail of the backend log
//   - failed: a terminal error message held on screen briefly before the
//     launcher exits non-zero
//
// # Message flow
//
// The Bubble Tea event loop is the sole owner of all view state. The
// readiness loop runs on its own goroutine and communicates only by
// sending StatusMsg and OutcomeMsg through Program.Send; the monitor
// poller writes to a state.Store that the event loop samples on a 1s tick.
// No view state is ever mutated from outside the Update function, so no
// locking is needed anywhere in this package.
//
// Status updates are best effort: a send to a stopped program is silently
// dropped, which is exactly the contract the readiness loop expects.
package ui

// Package readiness owns the wait-for-backend retry loop.
//
// # Overview
//
// After the backend process is spawned it needs time to open its port and
// finish database migrations before it can serve the application. The
// Controller polls the health endpoint at a fixed cadence until it either
// sees a successful probe (BackendReady) or runs out of attempts
// (BackendFailed). Those are the only two terminal states, and exactly one
// Report is produced per run.
//
// # Retry policy
//
// The loop uses a bounded, fixed-interval retry count rather than
// exponential backoff: the expected wait is short and bounded (process
// boot plus migrations), and a fixed interval gives a predictable worst
// case of MaxAttempts x RetryDelay. Transport errors and not-ready
// responses are handled identically — both mean "wait longer" — so no
// individual probe outcome ever shortens the budget.
//
// # Status bands
//
// While waiting, the controller derives a status line from the current
// attempt number via an ordered band table and pushes it to an optional
// Notifier. The text is purely qualitative feedback; the backend reports
// no real progress. Pushes are best effort and never affect the loop.
package readiness

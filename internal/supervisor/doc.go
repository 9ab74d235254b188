// Package supervisor spawns the backend sidecar process.
//
// # Overview
//
// The launcher starts exactly one child process: the backend server. Spawn
// composes the child's environment (PORT, MIX_ENV, BURRITO — opaque
// parameters the backend expects), redirects its output to a log file the
// main view can tail, and starts it. There are no restart semantics: a
// backend that dies stays dead, and the readiness loop or the health
// monitor will surface that as unreachable.
//
// Spawn failures (missing executable, start error) are fatal startup
// errors, distinct from the retryable backend-unreachable case handled by
// the readiness package.
package supervisor

// Package app provides the orchestration layer for the gantry launcher.
//
// # Overview
//
// This package is the composition root: it wires configuration, logging,
// the process supervisor, the readiness controller, the health monitor,
// and the UI into the complete launch sequence.
//
// # Launch sequence
//
//  1. Load config from ~/.config/gantry/config.toml
//  2. Open the rotating launcher log file
//  3. Spawn the backend with its fixed environment (PORT, MIX_ENV, BURRITO)
//  4. Start the splash UI on the foreground goroutine
//  5. Run the readiness wait on a background goroutine, pushing status
//     into the UI via Program.Send
//  6. On BackendReady: swap to the main view and start the health monitor
//  7. On BackendFailed: show the error, hold briefly, exit with code 1
//
// # Error Handling
//
// Two tiers, deliberately distinct:
//
// Fatal startup errors (returned from Run, never retried):
//   - Config file present but unreadable or invalid
//   - Log file cannot be created
//   - Backend executable missing or spawn failure
//   - UI failed to start
//
// Transient readiness errors (handled inside the retry loop):
//   - Connection refused while the backend opens its port
//   - Non-2xx health responses during migrations
//
// A transient error only becomes user-visible when the whole retry budget
// is exhausted, at which point the launcher exits non-zero.
//
// # Headless mode
//
// The splash is an optional capability: with Options.Headless the same
// readiness wait runs with plain console output and no TUI, using the same
// exit codes. This is what `gantry --headless` and scripted launches use.
package app

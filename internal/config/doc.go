// Package config handles loading and parsing the gantry launcher
// configuration file.
//
// # Overview
//
// The launcher is usable with no config file at all: every field has a
// default chosen for the bundled backend (localhost port 4000, /api/health,
// 120 attempts at 500ms). A config file only needs the fields it wants to
// override.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gantry/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	[backend]
//	command = "~/apps/backend/bin/server"
//	args = ["start"]
//	host = "127.0.0.1"
//	port = 4000
//	health_path = "/api/health"
//
//	[readiness]
//	max_attempts = 120
//	retry_delay_ms = 500
//
//	[logging]
//	dir = "~/.local/share/gantry/logs"
//	level = "info"
//
// # Immutability
//
// The resulting Config is fixed for the process lifetime. Components that
// need connection parameters (the prober, the supervisor) receive them at
// construction rather than reading ambient globals.
package config

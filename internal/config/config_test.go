package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend.Host != defaultHost || cfg.Backend.Port != defaultPort {
		t.Fatalf("Backend = %+v, want default host/port", cfg.Backend)
	}
	if cfg.Backend.HealthPath != defaultHealthPath {
		t.Fatalf("HealthPath = %q, want %q", cfg.Backend.HealthPath, defaultHealthPath)
	}
	if cfg.Readiness.MaxAttempts != 120 || cfg.Readiness.RetryDelay != 500*time.Millisecond {
		t.Fatalf("Readiness = %+v, want 120 x 500ms", cfg.Readiness)
	}
	if !strings.HasPrefix(cfg.Logging.Dir, home) {
		t.Fatalf("Logging.Dir = %q, want under HOME %q", cfg.Logging.Dir, home)
	}
	if cfg.LauncherLogPath() != filepath.Join(cfg.Logging.Dir, "gantry.log") {
		t.Fatalf("LauncherLogPath = %q", cfg.LauncherLogPath())
	}
	if cfg.BackendLogPath() != filepath.Join(cfg.Logging.Dir, "backend.log") {
		t.Fatalf("BackendLogPath = %q", cfg.BackendLogPath())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[backend]
command = "  ~/apps/server  "
args = ["start", "--verbose"]
host = "  10.0.0.5  "
port = 9999
health_path = "/healthz"

[readiness]
max_attempts = 60
retry_delay_ms = 1000

[logging]
dir = "~/gantry-logs"
level = "debug"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend.Command != filepath.Join(home, "apps/server") {
		t.Fatalf("Command = %q, want expanded under HOME", cfg.Backend.Command)
	}
	if len(cfg.Backend.Args) != 2 || cfg.Backend.Args[0] != "start" {
		t.Fatalf("Args = %v", cfg.Backend.Args)
	}
	if cfg.Backend.Host != "10.0.0.5" || cfg.Backend.Port != 9999 {
		t.Fatalf("Backend = %+v", cfg.Backend)
	}
	if cfg.Backend.HealthPath != "/healthz" {
		t.Fatalf("HealthPath = %q", cfg.Backend.HealthPath)
	}
	if cfg.Readiness.MaxAttempts != 60 {
		t.Fatalf("MaxAttempts = %d, want 60", cfg.Readiness.MaxAttempts)
	}
	if cfg.Readiness.RetryDelay != time.Second {
		t.Fatalf("RetryDelay = %v, want 1s", cfg.Readiness.RetryDelay)
	}
	if cfg.Logging.Dir != filepath.Join(home, "gantry-logs") {
		t.Fatalf("Logging.Dir = %q", cfg.Logging.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[backend]
command = "   "
host = ""
port = 0

[readiness]
max_attempts = 0
retry_delay_ms = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend.Command != defaultCommand {
		t.Fatalf("Command = %q, want %q", cfg.Backend.Command, defaultCommand)
	}
	if cfg.Backend.Host != defaultHost || cfg.Backend.Port != defaultPort {
		t.Fatalf("Backend = %+v, want defaults", cfg.Backend)
	}
	if cfg.Readiness.MaxAttempts != defaultMaxAttempts {
		t.Fatalf("MaxAttempts = %d, want %d", cfg.Readiness.MaxAttempts, defaultMaxAttempts)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[backend\nport ="), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error for invalid TOML")
	}
}

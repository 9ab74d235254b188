package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Backend describes the sidecar process and where it serves.
type Backend struct {
	Command    string
	Args       []string
	Host       string
	Port       int
	HealthPath string
}

// Readiness bounds the wait-for-backend loop.
type Readiness struct {
	MaxAttempts int
	RetryDelay  time.Duration
}

// Logging controls the launcher's own log file.
type Logging struct {
	Dir   string
	Level string
}

// Config is the immutable launcher configuration. It is resolved once at
// startup and passed explicitly to the components that need it.
type Config struct {
	Backend   Backend
	Readiness Readiness
	Logging   Logging
}

const (
	defaultConfigPath  = "~/.config/gantry/config.toml"
	defaultLogDir      = "~/.local/share/gantry/logs"
	defaultHost        = "127.0.0.1"
	defaultPort        = 4000
	defaultHealthPath  = "/api/health"
	defaultCommand     = "gantry-backend"
	defaultMaxAttempts = 120
	defaultRetryDelay  = 500 * time.Millisecond
	defaultLogLevel    = "info"
)

// Load locates and parses the launcher config, falling back to defaults
// when the file is missing or fields are empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Backend struct {
			Command    string   `toml:"command"`
			Args       []string `toml:"args"`
			Host       string   `toml:"host"`
			Port       int      `toml:"port"`
			HealthPath string   `toml:"health_path"`
		} `toml:"backend"`
		Readiness struct {
			MaxAttempts  int `toml:"max_attempts"`
			RetryDelayMS int `toml:"retry_delay_ms"`
		} `toml:"readiness"`
		Logging struct {
			Dir   string `toml:"dir"`
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if command := strings.TrimSpace(raw.Backend.Command); command != "" {
		cfg.Backend.Command = mustExpand(command)
	}
	if len(raw.Backend.Args) > 0 {
		cfg.Backend.Args = raw.Backend.Args
	}
	if host := strings.TrimSpace(raw.Backend.Host); host != "" {
		cfg.Backend.Host = host
	}
	if raw.Backend.Port > 0 {
		cfg.Backend.Port = raw.Backend.Port
	}
	if path := strings.TrimSpace(raw.Backend.HealthPath); path != "" {
		cfg.Backend.HealthPath = path
	}
	if raw.Readiness.MaxAttempts > 0 {
		cfg.Readiness.MaxAttempts = raw.Readiness.MaxAttempts
	}
	if raw.Readiness.RetryDelayMS > 0 {
		cfg.Readiness.RetryDelay = time.Duration(raw.Readiness.RetryDelayMS) * time.Millisecond
	}
	if dir := strings.TrimSpace(raw.Logging.Dir); dir != "" {
		cfg.Logging.Dir = mustExpand(dir)
	}
	if level := strings.TrimSpace(raw.Logging.Level); level != "" {
		cfg.Logging.Level = level
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		Backend: Backend{
			Command:    defaultCommand,
			Host:       defaultHost,
			Port:       defaultPort,
			HealthPath: defaultHealthPath,
		},
		Readiness: Readiness{
			MaxAttempts: defaultMaxAttempts,
			RetryDelay:  defaultRetryDelay,
		},
		Logging: Logging{
			Dir:   mustExpand(defaultLogDir),
			Level: defaultLogLevel,
		},
	}
}

// LauncherLogPath returns the path of the launcher's own log file.
func (c Config) LauncherLogPath() string {
	return filepath.Join(c.Logging.Dir, "gantry.log")
}

// BackendLogPath returns the file capturing the backend's stdout/stderr.
func (c Config) BackendLogPath() string {
	return filepath.Join(c.Logging.Dir, "backend.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

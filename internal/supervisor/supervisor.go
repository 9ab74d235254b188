package supervisor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"
)

// ErrNoCommand is returned when the spec names no backend executable.
var ErrNoCommand = errors.New("backend command is empty")

// Spec describes the single backend child process to spawn.
type Spec struct {
	Command string
	Args    []string
	Env     map[string]string // appended to the inherited environment
	LogPath string            // captures child stdout/stderr when set
}

// Handle is a spawned backend process. The backend's lifecycle is tied to
// the launcher's: there is no restart or respawn after this single spawn.
type Handle struct {
	cmd     *exec.Cmd
	logFile *os.File
}

// PID returns the child's process id.
func (h *Handle) PID() int {
	if h == nil || h.cmd == nil || h.cmd.Process == nil {
		return 0
	}
	return h.cmd.Process.Pid
}

// Spawn starts the backend process. Failures here are fatal startup errors;
// they are never retried.
func Spawn(spec Spec) (*Handle, error) {
	command := strings.TrimSpace(spec.Command)
	if command == "" {
		return nil, ErrNoCommand
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("resolve backend executable: %w", err)
	}

	cmd := exec.Command(command, spec.Args...)
	cmd.Env = BuildEnv(os.Environ(), spec.Env)

	handle := &Handle{cmd: cmd}
	if path := strings.TrimSpace(spec.LogPath); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create backend log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open backend log: %w", err)
		}
		cmd.Stdout = file
		cmd.Stderr = file
		handle.logFile = file
	}

	if err := cmd.Start(); err != nil {
		if handle.logFile != nil {
			_ = handle.logFile.Close()
		}
		return nil, fmt.Errorf("spawn backend: %w", err)
	}

	// Reap the child when it exits on its own so it never lingers as a
	// zombie while the launcher keeps running.
	go func() { _ = cmd.Wait() }()

	return handle, nil
}

// Stop terminates the backend, first with SIGTERM and, after the grace
// period, with SIGKILL. It is safe to call on a process that already died.
func (h *Handle) Stop(grace time.Duration) {
	if h == nil || h.cmd == nil || h.cmd.Process == nil {
		return
	}
	defer func() {
		if h.logFile != nil {
			_ = h.logFile.Close()
		}
	}()

	if err := h.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		// Wait was already claimed by the reaper goroutine; poll for exit
		// by signalling 0 instead.
		for h.cmd.Process.Signal(syscall.Signal(0)) == nil {
			time.Sleep(50 * time.Millisecond)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(grace):
		_ = h.cmd.Process.Kill()
	}
}

// BuildEnv appends the spec's variables to a base environment in a stable
// order, overriding any base entry with the same key.
func BuildEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}
	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(extra))
	for _, entry := range base {
		name, _, ok := strings.Cut(entry, "=")
		if ok {
			if _, shadowed := extra[name]; shadowed {
				continue
			}
		}
		env = append(env, entry)
	}
	for _, key := range keys {
		env = append(env, key+"="+extra[key])
	}
	return env
}

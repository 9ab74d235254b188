package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDoctorConfig(t *testing.T, serverURL string) string {
	t.Helper()
	u, err := url.Parse(serverURL)
	if err != nil {
		t.Fatalf("parse server URL: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("[backend]\nhost = %q\nport = %s\n", u.Hostname(), u.Port())
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	exitCode := 0
	cmd := newRootCommand(&exitCode)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out.String(), "gantry "+version) {
		t.Fatalf("output = %q, want version string", out.String())
	}
}

func TestDoctorCommand_ReadyBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	exitCode := 0
	cmd := newRootCommand(&exitCode)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"doctor", "-c", writeDoctorConfig(t, server.URL)})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Backend ready") {
		t.Fatalf("output = %q, want ready report", out.String())
	}
}

func TestDoctorCommand_NotReadyBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	exitCode := 0
	cmd := newRootCommand(&exitCode)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"doctor", "-c", writeDoctorConfig(t, server.URL)})

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatalf("Execute returned nil error, want not-ready failure")
	}
	if !strings.Contains(err.Error(), "not ready") {
		t.Fatalf("error = %v, want not-ready classification", err)
	}
}

func TestDoctorCommand_UnreachableBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	configPath := writeDoctorConfig(t, server.URL)
	server.Close()

	exitCode := 0
	cmd := newRootCommand(&exitCode)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"doctor", "-c", configPath})

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatalf("Execute returned nil error, want unreachable failure")
	}
	if !strings.Contains(err.Error(), "unreachable") {
		t.Fatalf("error = %v, want unreachable classification", err)
	}
}

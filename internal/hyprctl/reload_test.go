package hyprctl

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "fakehyprctl")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReloadNotFound(t *testing.T) {
	r := &Reloader{Command: filepath.Join(t.TempDir(), "definitely-missing"), Timeout: time.Second}
	ok, msg := r.Reload(context.Background())
	if ok {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(msg, "not found") {
		t.Errorf("msg = %q, want a not-found message", msg)
	}
}

func TestReloadSuccess(t *testing.T) {
	r := &Reloader{Command: writeScript(t, "exit 0\n"), Timeout: time.Second}
	ok, msg := r.Reload(context.Background())
	if !ok {
		t.Fatalf("expected success, got %q", msg)
	}
}

func TestReloadNonZeroExit(t *testing.T) {
	r := &Reloader{Command: writeScript(t, "echo 'config error' >&2\nexit 3\n"), Timeout: time.Second}
	ok, msg := r.Reload(context.Background())
	if ok {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(msg, "config error") {
		t.Errorf("msg = %q, want the stderr text", msg)
	}
}

func TestReloadNonZeroExitEmptyStderr(t *testing.T) {
	r := &Reloader{Command: writeScript(t, "exit 1\n"), Timeout: time.Second}
	ok, msg := r.Reload(context.Background())
	if ok {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(msg, "failed") {
		t.Errorf("msg = %q, want a generic failure message", msg)
	}
}

func TestReloadTimeout(t *testing.T) {
	r := &Reloader{Command: writeScript(t, "sleep 10\n"), Timeout: 100 * time.Millisecond}
	ok, msg := r.Reload(context.Background())
	if ok {
		t.Fatalf("expected timeout failure")
	}
	if !strings.Contains(msg, "timed out") {
		t.Errorf("msg = %q, want a timeout message", msg)
	}
}

// Package hyprctl asks a running Hyprland instance to reload its
// configuration. Failures are outcomes, never raised errors: the caller
// decides how to surface them.
package hyprctl

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds the reload subprocess.
const DefaultTimeout = 5 * time.Second

// Reloader runs "<Command> reload" with a bounded timeout.
type Reloader struct {
	Command string
	Timeout time.Duration
}

// New returns a Reloader for the standard hyprctl binary.
func New() *Reloader {
	return &Reloader{Command: "hyprctl", Timeout: DefaultTimeout}
}

// Reload triggers a config reload and reports (ok, message). Distinct
// messages cover binary not found, timeout and non-zero exit.
func (r *Reloader) Reload(ctx context.Context) (bool, string) {
	command := r.Command
	if command == "" {
		command = "hyprctl"
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, command, "reload")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	switch {
	case err == nil:
		return true, "Hyprland reloaded successfully"
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return false, command + " reload timed out"
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return false, command + " not found"
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = command + " reload failed"
			}
			return false, msg
		}
		return false, err.Error()
	}
}

package hyprconf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"

	"github.com/reinhart/hyprconf/internal/safety"
)

// DefaultPath returns the conventional Hyprland config location. Only entry
// points should call this; the Editor itself always works with an explicit
// path.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "hypr", "hyprland.conf")
}

// Load reads the config file into the line buffer and parses it. Failure
// modes are distinguishable with errors.Is against ErrNotFound, ErrNotAFile,
// ErrPermission and ErrEncoding; anything else surfaces as a generic wrapped
// error.
func (e *Editor) Load() error {
	info, err := os.Stat(e.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s (run with --init to create a default config)", ErrNotFound, e.path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, e.path)
	case err != nil:
		return fmt.Errorf("stat %s: %w", e.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotAFile, e.path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotAFile, e.path)
	}

	data, err := os.ReadFile(e.path)
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s (try: chmod 644 %s)", ErrPermission, e.path, e.path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", e.path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: %s (open it in a text editor and re-save as UTF-8)", ErrEncoding, e.path)
	}

	e.loadedText = string(data)
	e.lines = strings.Split(e.loadedText, "\n")
	e.parse()
	return nil
}

// Save writes the line buffer back to the config file verbatim. When backup
// is true and the file exists, a timestamped sibling copy is made first.
// The write itself is not atomic; the pre-write backup is the recovery
// story for a crash mid-write.
func (e *Editor) Save(backup bool) error {
	if backup {
		if _, err := os.Stat(e.path); err == nil {
			if _, err := safety.BackupFile(e.path); err != nil {
				return fmt.Errorf("backup %s: %w", e.path, err)
			}
		}
	}

	text := e.String()
	if err := os.WriteFile(e.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", e.path, err)
	}
	e.loadedText = text
	return nil
}

// CreateDefault materializes a minimal valid config at the editor's path,
// creating parent directories as needed, then loads it.
func (e *Editor) CreateDefault() error {
	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(e.path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write default config %s: %w", e.path, err)
	}
	return e.Load()
}

const defaultConfig = `# Hyprland config (created by hyprconf)

# Variables
$terminal = kitty
$browser = firefox
$filemanager = nautilus

# Autostart
exec-once = waybar
exec-once = hyprpaper

# Monitor (auto-detect)
monitor = ,preferred,auto,1

general {
    gaps_in = 5
    gaps_out = 20
    border_size = 2
    layout = dwindle
}

decoration {
    rounding = 10
    active_opacity = 1.0
    inactive_opacity = 1.0

    shadow {
        enabled = true
        range = 4
        render_power = 3
    }

    blur {
        enabled = true
        size = 3
        passes = 1
    }
}

animations {
    enabled = true
    bezier = myBezier, 0.05, 0.9, 0.1, 1.05
    animation = windows, 1, 7, myBezier
    animation = windowsOut, 1, 7, default, popin 80%
    animation = fade, 1, 7, default
    animation = workspaces, 1, 6, default
}

dwindle {
    pseudotile = false
    preserve_split = true
}

input {
    kb_layout = us
    sensitivity = 0
    follow_mouse = 1

    touchpad {
        natural_scroll = false
    }
}

# Keybindings
bind = SUPER, Return, exec, $terminal
bind = SUPER, Q, killactive
bind = SUPER, M, exit
bind = SUPER, E, exec, $filemanager
bind = SUPER, V, togglefloating
bind = SUPER, R, exec, wofi --show drun
bind = SUPER, P, pseudo
bind = SUPER, J, togglesplit
bind = SUPER, left, movefocus, l
bind = SUPER, right, movefocus, r
bind = SUPER, up, movefocus, u
bind = SUPER, down, movefocus, d
bind = SUPER, 1, workspace, 1
bind = SUPER, 2, workspace, 2
bind = SUPER, 3, workspace, 3
bind = SUPER, 4, workspace, 4
bind = SUPER, 5, workspace, 5
bind = SUPER SHIFT, 1, movetoworkspace, 1
bind = SUPER SHIFT, 2, movetoworkspace, 2
bind = SUPER SHIFT, 3, movetoworkspace, 3
bind = SUPER SHIFT, 4, movetoworkspace, 4
bind = SUPER SHIFT, 5, movetoworkspace, 5
bindm = SUPER, mouse:272, movewindow
bindm = SUPER, mouse:273, resizewindow
`

package hyprconf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprland.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadNotFound(t *testing.T) {
	e := New(filepath.Join(t.TempDir(), "missing.conf"))
	err := e.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadDirectory(t *testing.T) {
	e := New(t.TempDir())
	err := e.Load()
	if !errors.Is(err, ErrNotAFile) {
		t.Errorf("err = %v, want ErrNotAFile", err)
	}
}

func TestLoadPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}
	path := writeConfig(t, "general {\n}\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}
	e := New(path)
	err := e.Load()
	if !errors.Is(err, ErrPermission) {
		t.Errorf("err = %v, want ErrPermission", err)
	}
}

func TestLoadInvalidEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyprland.conf")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0o644); err != nil {
		t.Fatal(err)
	}
	e := New(path)
	err := e.Load()
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("err = %v, want ErrEncoding", err)
	}
}

func TestLoadParses(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	e := New(path)
	if err := e.Load(); err != nil {
		t.Fatal(err)
	}
	if got := e.Get("general", "gaps_in", ""); got != "5" {
		t.Errorf("Get(general, gaps_in) = %q", got)
	}
}

func TestSaveRoundTripBytes(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	e := New(path)
	if err := e.Load(); err != nil {
		t.Fatal(err)
	}
	if err := e.Save(false); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleConfig {
		t.Errorf("save without edits must be byte-identical")
	}
}

func TestSaveCreatesBackup(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	e := New(path)
	if err := e.Load(); err != nil {
		t.Fatal(err)
	}
	e.SetValue("general", "gaps_in", "12")
	if err := e.Save(true); err != nil {
		t.Fatal(err)
	}

	backups, err := filepath.Glob(path + ".bak.*")
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	data, err := os.ReadFile(backups[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleConfig {
		t.Errorf("backup must hold the pre-save content")
	}
}

func TestSaveNoBackup(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	e := New(path)
	if err := e.Load(); err != nil {
		t.Fatal(err)
	}
	if err := e.Save(false); err != nil {
		t.Fatal(err)
	}
	backups, _ := filepath.Glob(path + ".bak.*")
	if len(backups) != 0 {
		t.Errorf("unexpected backups: %v", backups)
	}
}

func TestCommentAndWhitespacePreservation(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	e := New(path)
	if err := e.Load(); err != nil {
		t.Fatal(err)
	}
	e.SetValue("decoration", "rounding", "0")
	if err := e.Save(false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	before := strings.Split(sampleConfig, "\n")
	after := strings.Split(string(data), "\n")
	if len(before) != len(after) {
		t.Fatalf("line count changed: %d -> %d", len(before), len(after))
	}
	changed := 0
	for i := range before {
		if before[i] != after[i] {
			changed++
			if !strings.Contains(after[i], "rounding = 0") {
				t.Errorf("unexpected change at line %d: %q", i+1, after[i])
			}
		}
	}
	if changed != 1 {
		t.Errorf("%d lines changed, want 1", changed)
	}
}

func TestCreateDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hypr", "hyprland.conf")
	e := New(path)
	if err := e.CreateDefault(); err != nil {
		t.Fatal(err)
	}
	if got := e.Get("general", "layout", ""); got != "dwindle" {
		t.Errorf("default config layout = %q", got)
	}
	if len(e.Binds()) == 0 {
		t.Errorf("default config has no binds")
	}
	if _, ok := e.Variable("$terminal"); !ok {
		t.Errorf("default config missing $terminal")
	}
}

func TestPatchAndDirty(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	e := New(path)
	if err := e.Load(); err != nil {
		t.Fatal(err)
	}
	if e.Dirty() || e.Patch() != "" {
		t.Errorf("freshly loaded editor must be clean")
	}
	e.SetValue("general", "gaps_in", "12")
	if !e.Dirty() {
		t.Errorf("edit must mark the editor dirty")
	}
	if e.Patch() == "" {
		t.Errorf("Patch() empty after an edit")
	}
	if err := e.Save(false); err != nil {
		t.Fatal(err)
	}
	if e.Dirty() || e.Patch() != "" {
		t.Errorf("save must reset the pending patch")
	}
}

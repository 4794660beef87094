package safety

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBackupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyprland.conf")
	if err := os.WriteFile(path, []byte("original\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	backup, err := BackupFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(backup, path+".bak.") {
		t.Errorf("backup path = %q, want %q prefix", backup, path+".bak.")
	}
	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original\n" {
		t.Errorf("backup content = %q", data)
	}
}

func TestBackupMissingSource(t *testing.T) {
	if _, err := BackupFile(filepath.Join(t.TempDir(), "missing.conf")); err == nil {
		t.Errorf("expected an error for a missing source")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hyprland.conf")
	for _, ts := range []string{"20240101_120000", "20250101_120000"} {
		if err := os.WriteFile(path+".bak."+ts, []byte(ts), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := ListBackups(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Fatalf("got %d backups, want 2", len(backups))
	}
	if !strings.HasSuffix(backups[0], "20250101_120000") {
		t.Errorf("backups[0] = %q, want newest first", backups[0])
	}
}

func TestRestore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hyprland.conf")
	backup := path + ".bak.20240101_120000"
	if err := os.WriteFile(path, []byte("broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(backup, []byte("good"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Restore(backup, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "good" {
		t.Errorf("restored content = %q", data)
	}

	if err := Restore(backup+"nope", path); err == nil {
		t.Errorf("expected an error for a missing backup")
	}
}

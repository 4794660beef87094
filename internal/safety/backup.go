// Package safety makes and restores timestamped sibling backups of config
// files. Backups are never pruned.
package safety

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// timestampFormat gives second resolution, one backup per save.
const timestampFormat = "20060102_150405"

// BackupFile copies path to a sibling file suffixed ".bak.<timestamp>" and
// returns the backup path.
func BackupFile(path string) (string, error) {
	ts := time.Now().Format(timestampFormat)
	backupPath := path + ".bak." + ts
	if err := copyFile(path, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", path, err)
	}
	return backupPath, nil
}

// ListBackups returns the backups of path, newest first.
func ListBackups(path string) ([]string, error) {
	matches, err := filepath.Glob(path + ".bak.*")
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches, nil
}

// Restore copies a backup over the target file.
func Restore(backupPath, target string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup %s not found: %w", backupPath, err)
	}
	if err := copyFile(backupPath, target); err != nil {
		return fmt.Errorf("failed to restore %s: %w", target, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

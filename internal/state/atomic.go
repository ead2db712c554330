package state

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AtomicWrite writes data to a file atomically using a temp file + rename strategy.
// The target is never observed half-written.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	_, err := AtomicWriteFrom(path, bytes.NewReader(data), perm)
	return err
}

// AtomicWriteFrom streams r into path through a temp file in the same directory,
// then renames it into place. It returns the number of bytes written.
//
// The temp file is removed on any failure, leaving an existing target untouched.
func AtomicWriteFrom(path string, r io.Reader, perm os.FileMode) (int64, error) {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return 0, fmt.Errorf("failed to ensure parent directory: %w", err)
	}

	// Same directory keeps the rename on one filesystem
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	n, err := io.Copy(tmpFile, r)
	if err != nil {
		return 0, fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return 0, fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return 0, fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return 0, fmt.Errorf("failed to rename temp file to target: %w", err)
	}

	success = true
	return n, nil
}

// AtomicWriteWithBackup writes data atomically and keeps the previous file as path.bak.
func AtomicWriteWithBackup(path string, data []byte, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".bak"); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	return AtomicWrite(path, data, perm)
}

package state

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileLock is an advisory flock(2) lock held on a sidecar file.
type FileLock struct {
	file *os.File
	path string
}

// LockFile acquires an exclusive lock on path, creating the file if needed.
// It blocks until the lock is available. The caller must call Unlock.
func LockFile(path string) (*FileLock, error) {
	//nolint:gosec // G304: lock path is derived from the config directory
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for locking: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	return &FileLock{
		file: f,
		path: path,
	}, nil
}

// Unlock releases the file lock and closes the file.
func (fl *FileLock) Unlock() error {
	if fl.file == nil {
		return nil
	}

	if err := syscall.Flock(int(fl.file.Fd()), syscall.LOCK_UN); err != nil {
		_ = fl.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}

	if err := fl.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	fl.file = nil
	return nil
}

// Path returns the path to the lock file.
func (fl *FileLock) Path() string {
	return fl.path
}

// withLock runs fn while holding the lock for target.
func withLock(target string, fn func() error) (err error) {
	if err := EnsureDir(filepath.Dir(target)); err != nil {
		return err
	}

	lock, err := LockFile(target + LockSuffix)
	if err != nil {
		return err
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}()

	return fn()
}

// Package filelock provides advisory file locking and atomic writes for the
// aggregate output path, so "never overwrite" holds across processes.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock wraps an advisory flock on a lock file placed next to the guarded path.
type Lock struct {
	fl   *flock.Flock
	path string
}

// ForPath creates a lock guarding the given file. The lock file lives at
// path + ".lock" so it never collides with the guarded file itself.
func ForPath(path string) *Lock {
	lockPath := path + ".lock"
	return &Lock{fl: flock.New(lockPath), path: lockPath}
}

// Acquire blocks until the exclusive lock is held.
func (l *Lock) Acquire() error {
	if err := l.fl.Lock(); err != nil {
		return fmt.Errorf("acquire lock %s: %w", l.path, err)
	}
	return nil
}

// Release drops the lock and removes the lock file. Removal failures are
// ignored: a stale lock file only costs a future open, never correctness.
func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	os.Remove(l.path)
	return nil
}

// WriteAtomic writes data to path through a temp file in the same directory
// followed by a rename, so readers never observe a partial file. If any step
// fails the target is left untouched.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".tagfold-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}
	return nil
}

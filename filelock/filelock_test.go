package filelock

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.md")

	require.NoError(t, WriteAtomic(target, []byte("hello"), 0o644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files may remain")
}

func TestWriteAtomicOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	require.NoError(t, WriteAtomic(target, []byte("new"), 0o644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "out.md")
	require.Error(t, WriteAtomic(target, []byte("x"), 0o644))
}

func TestLockAcquireRelease(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.md")

	lock := ForPath(target)
	require.NoError(t, lock.Acquire())
	require.NoError(t, lock.Release())

	_, err := os.Stat(target + ".lock")
	assert.True(t, os.IsNotExist(err), "lock file should be removed on release")
}

func TestLockSerializesWriters(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.md")

	first := ForPath(target)
	require.NoError(t, first.Acquire())

	done := make(chan struct{})
	go func() {
		second := ForPath(target)
		require.NoError(t, second.Acquire())
		require.NoError(t, second.Release())
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("second lock acquired while first was held")
	default:
	}

	require.NoError(t, first.Release())
	<-done
}

package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScanMissingDirectory(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "does-not-exist"), zerolog.Nop())

	opts, err := v.Scan()
	require.NoError(t, err)
	assert.Empty(t, opts.Tags)
	assert.Empty(t, opts.PrivacyLevels)
}

func TestScanEmptyDirectory(t *testing.T) {
	v := New(t.TempDir(), zerolog.Nop())

	opts, err := v.Scan()
	require.NoError(t, err)
	assert.Empty(t, opts.Tags)
	assert.Empty(t, opts.PrivacyLevels)
}

func TestScanCollectsSortedDistinctOptions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2024-01-01.md", "---\ntags: [zebra, trip]\nprivacy: public\n---\nbody")
	writeFile(t, dir, "2024-01-02.md", "---\ntags: [trip, alpha]\nprivacy: private\n---\nbody")
	writeFile(t, dir, "2024-01-03.md", "---\ntags: [\" alpha \"]\nprivacy: public\n---\nbody")
	writeFile(t, dir, "2024-01-04.md", "no frontmatter here")

	v := New(dir, zerolog.Nop())
	opts, err := v.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "trip", "zebra"}, opts.Tags)
	assert.Equal(t, []string{"private", "public"}, opts.PrivacyLevels)
}

func TestScanSkipsUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2024-01-01.md", "---\ntags: [broken\n---\nbody")
	writeFile(t, dir, "2024-01-02.md", "---\ntags: [work]\n---\nbody")

	v := New(dir, zerolog.Nop())
	opts, err := v.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"work"}, opts.Tags)
}

func TestScanDropsNonStringTags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2024-01-01.md", "---\ntags: [9000, trip]\n---\nbody")

	v := New(dir, zerolog.Nop())
	opts, err := v.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"trip"}, opts.Tags)
}

func TestListNoteFilesIsNonRecursiveAndSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2024-01-02.md", "b")
	writeFile(t, dir, "2024-01-01.md", "a")
	writeFile(t, dir, "notes.txt", "not markdown")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	writeFile(t, filepath.Join(dir, "nested"), "2024-01-03.md", "nested")

	v := New(dir, zerolog.Nop())
	files, err := v.ListNoteFiles()
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "2024-01-01.md"), files[0])
	assert.Equal(t, filepath.Join(dir, "2024-01-02.md"), files[1])
}

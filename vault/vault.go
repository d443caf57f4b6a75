// Package vault reads markdown notes with YAML frontmatter from a flat
// directory. It never writes.
package vault

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// Vault is a directory of dated markdown notes.
type Vault struct {
	dir string
	log zerolog.Logger
}

// New returns a Vault rooted at dir. The directory is not required to
// exist; enumeration of a missing directory yields no files.
func New(dir string, log zerolog.Logger) *Vault {
	return &Vault{dir: dir, log: log}
}

// ListNoteFiles returns the markdown files directly inside the vault
// (non-recursive), sorted ascending by filename. With the YYYY-MM-DD.md
// naming convention this is chronological order.
func (v *Vault) ListNoteFiles() ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(v.dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", v.dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

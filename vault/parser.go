package vault

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/tagfold/server/domain"
)

// noteMeta is the frontmatter envelope recognized in source notes. Tags is
// deliberately untyped so a non-string entry drops that entry instead of
// failing the whole file.
type noteMeta struct {
	Tags    []any  `yaml:"tags"`
	Privacy string `yaml:"privacy"`
}

// ParseNote builds a Note from raw file bytes. The frontmatter block is
// optional; without one the entire content is the body. The filename date
// is whatever precedes the extension, with no calendar validation.
func ParseNote(path string, data []byte) (*domain.Note, error) {
	var meta noteMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter of %s: %w", filepath.Base(path), err)
	}

	name := filepath.Base(path)
	return &domain.Note{
		Path:         path,
		FilenameDate: strings.TrimSuffix(name, filepath.Ext(name)),
		Tags:         cleanTags(meta.Tags),
		Privacy:      meta.Privacy,
		Body:         string(body),
	}, nil
}

// ReadNote reads and parses a single note file.
func ReadNote(path string) (*domain.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseNote(path, data)
}

// cleanTags keeps the string-typed entries, trimmed, dropping empties.
func cleanTags(raw []any) []string {
	var tags []string
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		tags = append(tags, s)
	}
	return tags
}

package aggregate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tagfold/server/domain"
)

// synthesizeFrontmatter builds the metadata block of an aggregate file.
// The tags always carry "aggregated" plus the sanitized naming token,
// deduplicated. Unset filters become explicit nulls.
func synthesizeFrontmatter(spec domain.FilterSpec, aggType domain.AggregationType, token, today string) domain.OutputFrontmatter {
	tags := []string{"aggregated"}
	if !slices.Contains(tags, token) {
		tags = append(tags, token)
	}

	var sourceTags *[]string
	if !spec.RequiredTags.IsMatchAll() {
		st := append([]string{}, spec.RequiredTags.Tags()...)
		sourceTags = &st
	}

	return domain.OutputFrontmatter{
		Tags:            tags,
		Date:            today,
		AggregationType: aggType,
		SourceTags:      sourceTags,
		SourceDirectory: filepath.Base(spec.NotesDir),
		FilterPrivacy:   append([]string{}, spec.AllowedPrivacy...),
		FilterStartDate: nullable(spec.StartDate),
		FilterEndDate:   nullable(spec.EndDate),
	}
}

// renderDocument assembles the output file: frontmatter block followed by
// the concatenated body, in the same markdown-with-frontmatter convention
// the source notes use.
func renderDocument(fm domain.OutputFrontmatter, body string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	buf.WriteString("---\n\n")
	buf.WriteString(body)
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

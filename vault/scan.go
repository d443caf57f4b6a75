package vault

import (
	"os"
	"sort"
)

// Options is the distinct set of tags and privacy levels present in a
// vault, for populating a filter-selection UI.
type Options struct {
	Tags          []string `json:"tags"`
	PrivacyLevels []string `json:"privacy_levels"`
}

// Scan enumerates every markdown file directly in the vault and collects
// the distinct tags and privacy levels, deduplicated and sorted ascending.
// A missing directory yields empty collections, not an error; callers that
// need to distinguish an empty vault from a missing one check existence
// themselves. A file whose frontmatter fails to parse is logged and
// skipped; one bad file never aborts the scan.
func (v *Vault) Scan() (Options, error) {
	opts := Options{Tags: []string{}, PrivacyLevels: []string{}}

	if _, err := os.Stat(v.dir); os.IsNotExist(err) {
		return opts, nil
	}

	files, err := v.ListNoteFiles()
	if err != nil {
		return opts, err
	}

	tagSet := map[string]struct{}{}
	privacySet := map[string]struct{}{}

	for _, path := range files {
		note, err := ReadNote(path)
		if err != nil {
			v.log.Warn().Err(err).Str("file", path).Msg("skipping unparseable note")
			continue
		}
		for _, tag := range note.Tags {
			tagSet[tag] = struct{}{}
		}
		if note.Privacy != "" {
			privacySet[note.Privacy] = struct{}{}
		}
	}

	for tag := range tagSet {
		opts.Tags = append(opts.Tags, tag)
	}
	for p := range privacySet {
		opts.PrivacyLevels = append(opts.PrivacyLevels, p)
	}
	sort.Strings(opts.Tags)
	sort.Strings(opts.PrivacyLevels)
	return opts, nil
}

package domain

import (
	"fmt"
	"slices"
)

// TagFilter is the tag constraint of a filter specification. It is either
// the match-all sentinel (no tag constraint) or a non-empty set of tags
// with match-any semantics: a note qualifies if it carries at least one
// of them. The zero value is an invalid MatchAny with no tags.
type TagFilter struct {
	matchAll bool
	tags     []string
}

// MatchAll returns the filter state meaning "no tag constraint".
func MatchAll() TagFilter {
	return TagFilter{matchAll: true}
}

// MatchAny returns a filter requiring at least one of the given tags.
// Validation of non-emptiness happens in Validate, not here, so the
// boundary can construct the value before deciding how to report errors.
func MatchAny(tags []string) TagFilter {
	return TagFilter{tags: tags}
}

// IsMatchAll reports whether the filter is the match-all sentinel.
func (f TagFilter) IsMatchAll() bool { return f.matchAll }

// Tags returns the required tag set. Nil for match-all.
func (f TagFilter) Tags() []string {
	if f.matchAll {
		return nil
	}
	return f.tags
}

// Validate checks the invariant that a non-match-all filter carries at
// least one tag.
func (f TagFilter) Validate() error {
	if !f.matchAll && len(f.tags) == 0 {
		return fmt.Errorf("%w: tag set is empty and not match-all", ErrInvalidFilter)
	}
	return nil
}

// Matches reports whether a note with the given tags passes the filter.
// Under a non-match-all filter a note with zero tags never matches.
func (f TagFilter) Matches(noteTags []string) bool {
	if f.matchAll {
		return true
	}
	for _, tag := range noteTags {
		if slices.Contains(f.tags, tag) {
			return true
		}
	}
	return false
}

// FilterSpec is the immutable input of one aggregation call.
type FilterSpec struct {
	// NotesDir must exist; callers validate before invoking the engine.
	NotesDir string
	// AggregatesDir is created if missing.
	AggregatesDir string
	RequiredTags  TagFilter
	// AllowedPrivacy is a set of privacy strings; empty means no
	// privacy constraint.
	AllowedPrivacy []string
	// StartDate and EndDate bound the filename date inclusively, using
	// plain string comparison. Empty means unbounded.
	StartDate string
	EndDate   string
}

// PrivacyAllowed reports whether a note's privacy value passes the spec's
// privacy filter.
func (s FilterSpec) PrivacyAllowed(privacy string) bool {
	if len(s.AllowedPrivacy) == 0 {
		return true
	}
	return privacy != "" && slices.Contains(s.AllowedPrivacy, privacy)
}

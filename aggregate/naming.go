package aggregate

import (
	"regexp"
	"strings"

	"github.com/tagfold/server/domain"
)

// MultiTagToken names every multi-tag aggregate regardless of which tags
// were chosen, so two different multi-tag selections on the same day
// collide. Kept as-is: disambiguating the name would silently change the
// output contract.
const MultiTagToken = "multi-tag"

var unsafeTokenChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// classify derives the aggregation type and the primary tag token used
// for naming the output file.
func classify(filter domain.TagFilter) (domain.AggregationType, string) {
	switch tags := filter.Tags(); {
	case filter.IsMatchAll():
		return domain.AggregationAllNotes, "all"
	case len(tags) == 1:
		return domain.AggregationSingleTag, tags[0]
	default:
		return domain.AggregationMultiTag, MultiTagToken
	}
}

// SanitizeToken makes a tag safe as a filename component: every character
// outside [A-Za-z0-9_-] becomes "-", then the result is lowercased.
func SanitizeToken(token string) string {
	return strings.ToLower(unsafeTokenChars.ReplaceAllString(token, "-"))
}

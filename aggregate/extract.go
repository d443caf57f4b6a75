package aggregate

import (
	"regexp"
	"strings"
)

var (
	// separatorLine matches a line consisting solely of ---, with
	// optional surrounding whitespace.
	separatorLine = regexp.MustCompile(`^\s*---\s*$`)

	// dateHeading matches the conventional daily-note heading, e.g.
	// "## 2024-01-02".
	dateHeading = regexp.MustCompile(`^## \d{4}-\d{2}-\d{2}$`)
)

// ExtractContent returns the shareable portion of a note body: everything
// before the first separator line (or the whole body when there is none),
// with one leading date heading stripped and surrounding whitespace
// trimmed. Pure function of the body text, idempotent.
func ExtractContent(body string) string {
	lines := strings.Split(body, "\n")
	cut := len(lines)
	for i, line := range lines {
		if separatorLine.MatchString(strings.TrimRight(line, "\r")) {
			cut = i
			break
		}
	}

	content := strings.TrimSpace(strings.Join(lines[:cut], "\n"))

	first, rest, found := strings.Cut(content, "\n")
	if dateHeading.MatchString(strings.TrimRight(first, " \t\r")) {
		if found {
			content = rest
		} else {
			content = ""
		}
	}

	return strings.TrimSpace(content)
}

package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tagfold/server/domain"
)

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"trip", "trip"},
		{"Trip Notes", "trip-notes"},
		{"C++/rust", "c---rust"},
		{"under_score-dash", "under_score-dash"},
		{"émoji☕", "-moji-"},
		{"2024", "2024"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeToken(tt.in), "input %q", tt.in)
	}
}

func TestClassify(t *testing.T) {
	aggType, token := classify(domain.MatchAll())
	assert.Equal(t, domain.AggregationAllNotes, aggType)
	assert.Equal(t, "all", token)

	aggType, token = classify(domain.MatchAny([]string{"trip"}))
	assert.Equal(t, domain.AggregationSingleTag, aggType)
	assert.Equal(t, "trip", token)

	aggType, token = classify(domain.MatchAny([]string{"trip", "work"}))
	assert.Equal(t, domain.AggregationMultiTag, aggType)
	assert.Equal(t, MultiTagToken, token)
}

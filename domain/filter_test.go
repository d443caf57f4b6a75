package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagFilterValidate(t *testing.T) {
	assert.NoError(t, MatchAll().Validate())
	assert.NoError(t, MatchAny([]string{"trip"}).Validate())

	err := MatchAny(nil).Validate()
	require.ErrorIs(t, err, ErrInvalidFilter)
	require.ErrorIs(t, MatchAny([]string{}).Validate(), ErrInvalidFilter)
}

func TestTagFilterMatches(t *testing.T) {
	all := MatchAll()
	assert.True(t, all.Matches(nil))
	assert.True(t, all.Matches([]string{"anything"}))

	some := MatchAny([]string{"trip", "work"})
	assert.True(t, some.Matches([]string{"work"}))
	assert.True(t, some.Matches([]string{"misc", "trip"}))
	assert.False(t, some.Matches([]string{"misc"}))
	assert.False(t, some.Matches(nil), "a note with zero tags never matches a non-match-all filter")
}

func TestPrivacyAllowed(t *testing.T) {
	open := FilterSpec{}
	assert.True(t, open.PrivacyAllowed(""))
	assert.True(t, open.PrivacyAllowed("private"))

	restricted := FilterSpec{AllowedPrivacy: []string{"public"}}
	assert.True(t, restricted.PrivacyAllowed("public"))
	assert.False(t, restricted.PrivacyAllowed("private"))
	assert.False(t, restricted.PrivacyAllowed(""), "a note without a privacy value fails a non-empty allow-list")
}

package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKindFilter(t *testing.T) {
	k, err := ParseKindFilter("")
	require.NoError(t, err)
	assert.Nil(t, k)

	k, err = ParseKindFilter("all")
	require.NoError(t, err)
	assert.Nil(t, k)

	k, err = ParseKindFilter("tv")
	require.NoError(t, err)
	assert.Equal(t, KindSeries, *k)

	_, err = ParseKindFilter("documentary")
	assert.True(t, IsValidation(err))
}

func TestParseWatchedFilter(t *testing.T) {
	assert.Nil(t, ParseWatchedFilter("all"))
	assert.False(t, *ParseWatchedFilter(""))
	assert.True(t, *ParseWatchedFilter("true"))
	assert.True(t, *ParseWatchedFilter("watched"))
	assert.False(t, *ParseWatchedFilter("false"))
	assert.False(t, *ParseWatchedFilter("unwatched"))
}

func TestSortKey(t *testing.T) {
	for _, k := range SortKeys() {
		assert.True(t, k.Known(), string(k))
	}
	assert.False(t, SortKey("popularity").Known())
	assert.Equal(t, "created_at DESC", SortKey("popularity").orderBy())
	assert.Equal(t, "user_rating DESC NULLS LAST", SortRating.orderBy())
}

package library

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDoc(t *testing.T, doc string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(doc), &fields))
	return fields
}

func TestDecodeEntry(t *testing.T) {
	e, err := DecodeEntry(decodeDoc(t, `{
		"tmdb_id": 1399,
		"title": "Game of Thrones",
		"type": "tv",
		"year": 2011,
		"genres": ["Drama", "Fantasy"],
		"tmdb_data": {"poster_path": "/x.jpg"},
		"watched": true,
		"userRating": 9.5,
		"user_review": "Winter",
		"totalSeasons": 8,
		"total_episodes": 73,
		"watchedEpisodes": ["S1E1"],
		"id": "ignored",
		"somethingElse": 1
	}`))
	require.NoError(t, err)

	assert.Equal(t, ExternalRef("1399"), *e.ExternalRef)
	assert.Equal(t, "Game of Thrones", e.Title)
	assert.Equal(t, KindSeries, e.Kind)
	assert.Equal(t, 2011, *e.Year)
	assert.Equal(t, []string{"Drama", "Fantasy"}, e.Genres)
	assert.JSONEq(t, `{"poster_path":"/x.jpg"}`, string(e.ExternalMetadata))
	assert.True(t, e.Watched)
	assert.Equal(t, 9.5, *e.UserRating)
	assert.Equal(t, "Winter", *e.UserReview)
	assert.Equal(t, 8, *e.TotalSeasons)
	assert.Equal(t, 73, *e.TotalEpisodes)
	assert.Equal(t, []string{"S1E1"}, e.WatchedEpisodes)
	assert.Empty(t, e.ID, "ids are never taken from input")
}

func TestDecodeEntry_Required(t *testing.T) {
	_, err := DecodeEntry(decodeDoc(t, `{"type": "movie"}`))
	assert.True(t, IsValidation(err))

	_, err = DecodeEntry(decodeDoc(t, `{"title": "X"}`))
	assert.True(t, IsValidation(err))

	_, err = DecodeEntry(decodeDoc(t, `{"title": "X", "type": "book"}`))
	assert.True(t, IsValidation(err))
}

func TestExternalRef_JSON(t *testing.T) {
	tests := []struct {
		ref  ExternalRef
		want string
	}{
		{"603", `603`},
		{"007", `"007"`},
		{"tt0133093", `"tt0133093"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.ref)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(data))

		var back ExternalRef
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, tt.ref, back)
	}
}

func TestFieldNames(t *testing.T) {
	names := FieldNames()

	assert.Contains(t, names, "userRating")
	assert.Contains(t, names, "user_rating")
	assert.NotContains(t, names, "id")
	assert.NotContains(t, names, "user_id")
	assert.NotContains(t, names, "created_at")
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Movie")
	require.NoError(t, err)
	assert.Equal(t, KindMovie, k)

	k, err = ParseKind("tv")
	require.NoError(t, err)
	assert.Equal(t, KindSeries, k)

	_, err = ParseKind("anime")
	assert.True(t, IsValidation(err))
}

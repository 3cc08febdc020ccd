// Package library manages a user's catalogue of movies and series and their
// watch progress.
package library

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Kind distinguishes movies from series.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// ParseKind accepts "movie" or "series". The legacy "tv" spelling found in
// older exports is read as a series.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie":
		return KindMovie, nil
	case "series", "tv":
		return KindSeries, nil
	default:
		return "", &ValidationError{Field: "type", Message: "must be 'movie' or 'series'"}
	}
}

// ExternalRef identifies an entry in a third-party catalogue (TMDB). It is
// opaque to the library.
type ExternalRef string

// MarshalJSON writes numeric references as JSON numbers so exports keep the
// shape older clients produced.
func (r ExternalRef) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(r), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(r) {
		return []byte(r), nil
	}
	return json.Marshal(string(r))
}

// UnmarshalJSON accepts either a JSON number or a string.
func (r *ExternalRef) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*r = ExternalRef(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ExternalRef(s)
	return nil
}

// Entry is one catalogue item owned by a single user.
//
// Watched and WatchedEpisodes are independent: flipping Watched never touches
// the episode list, and the episode list is not checked against
// TotalEpisodes.
type Entry struct {
	ID               string          `json:"id"`
	Owner            string          `json:"user_id"`
	ExternalRef      *ExternalRef    `json:"tmdb_id"`
	Title            string          `json:"title"`
	Kind             Kind            `json:"type"`
	Year             *int            `json:"year"`
	Genres           []string        `json:"genres"`
	ExternalMetadata json.RawMessage `json:"tmdb_data"`
	Watched          bool            `json:"watched"`
	UserRating       *float64        `json:"user_rating"`
	UserReview       *string         `json:"user_review"`
	TotalSeasons     *int            `json:"total_seasons"`
	TotalEpisodes    *int            `json:"total_episodes"`
	WatchedEpisodes  []string        `json:"watched_episodes"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Stats counts an owner's entries.
type Stats struct {
	Total   int `json:"total"`
	Movies  int `json:"movies"`
	Series  int `json:"tvShows"`
	Watched int `json:"watched"`
}

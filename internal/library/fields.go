package library

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field is a mutable attribute of an Entry.
type Field uint8

const (
	FieldTitle Field = iota + 1
	FieldKind
	FieldYear
	FieldGenres
	FieldExternalRef
	FieldExternalMetadata
	FieldWatched
	FieldUserRating
	FieldUserReview
	FieldTotalSeasons
	FieldTotalEpisodes
	FieldWatchedEpisodes
)

// fieldSpec ties a Field to its column, the input keys that name it, and
// how its value is decoded from JSON and bound into a statement.
type fieldSpec struct {
	field  Field
	column column
	names  []string // preferred spelling first
	decode func(e *Entry, raw json.RawMessage) error
	bind   func(e *Entry) any
}

// fieldSpecs is the allow-list of mutable attributes, in column order.
var fieldSpecs = []fieldSpec{
	{
		field: FieldExternalRef, column: colExternalRef, names: []string{"tmdb_id", "tmdbId"},
		decode: func(e *Entry, raw json.RawMessage) error {
			if isNull(raw) {
				e.ExternalRef = nil
				return nil
			}
			var ref ExternalRef
			if err := json.Unmarshal(raw, &ref); err != nil {
				return &ValidationError{Field: "tmdb_id", Message: "must be a number or string"}
			}
			e.ExternalRef = &ref
			return nil
		},
		bind: func(e *Entry) any {
			if e.ExternalRef == nil {
				return nil
			}
			return string(*e.ExternalRef)
		},
	},
	{
		field: FieldTitle, column: colTitle, names: []string{"title"},
		decode: func(e *Entry, raw json.RawMessage) error {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil || isNull(raw) {
				return &ValidationError{Field: "title", Message: "must be a string"}
			}
			e.Title = normalizeTitle(s)
			if e.Title == "" {
				return &ValidationError{Field: "title", Message: "is required"}
			}
			return nil
		},
		bind: func(e *Entry) any { return e.Title },
	},
	{
		field: FieldKind, column: colKind, names: []string{"type"},
		decode: func(e *Entry, raw json.RawMessage) error {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil || isNull(raw) {
				return &ValidationError{Field: "type", Message: "must be 'movie' or 'series'"}
			}
			k, err := ParseKind(s)
			if err != nil {
				return err
			}
			e.Kind = k
			return nil
		},
		bind: func(e *Entry) any { return string(e.Kind) },
	},
	{
		field: FieldYear, column: colYear, names: []string{"year"},
		decode: func(e *Entry, raw json.RawMessage) error {
			return decodeOptionalInt("year", raw, &e.Year)
		},
		bind: func(e *Entry) any { return optionalInt(e.Year) },
	},
	{
		field: FieldGenres, column: colGenres, names: []string{"genres"},
		decode: func(e *Entry, raw json.RawMessage) error {
			return decodeStrings("genres", raw, &e.Genres)
		},
		bind: func(e *Entry) any { return encodeStrings(e.Genres) },
	},
	{
		field: FieldExternalMetadata, column: colMetadata, names: []string{"tmdb_data", "tmdbData"},
		decode: func(e *Entry, raw json.RawMessage) error {
			if isNull(raw) {
				e.ExternalMetadata = nil
				return nil
			}
			var buf bytes.Buffer
			if err := json.Compact(&buf, raw); err != nil {
				return &ValidationError{Field: "tmdb_data", Message: "must be valid JSON"}
			}
			e.ExternalMetadata = json.RawMessage(buf.Bytes())
			return nil
		},
		bind: func(e *Entry) any {
			if len(e.ExternalMetadata) == 0 {
				return nil
			}
			return string(e.ExternalMetadata)
		},
	},
	{
		field: FieldWatched, column: colWatched, names: []string{"watched"},
		decode: func(e *Entry, raw json.RawMessage) error {
			if isNull(raw) {
				e.Watched = false
				return nil
			}
			if err := json.Unmarshal(raw, &e.Watched); err != nil {
				return &ValidationError{Field: "watched", Message: "must be a boolean"}
			}
			return nil
		},
		bind: func(e *Entry) any { return e.Watched },
	},
	{
		field: FieldUserRating, column: colUserRating, names: []string{"userRating", "user_rating"},
		decode: func(e *Entry, raw json.RawMessage) error {
			if isNull(raw) {
				e.UserRating = nil
				return nil
			}
			f, err := decodeNumber(raw)
			if err != nil {
				return &ValidationError{Field: "user_rating", Message: "must be a number"}
			}
			e.UserRating = &f
			return nil
		},
		bind: func(e *Entry) any {
			if e.UserRating == nil {
				return nil
			}
			return *e.UserRating
		},
	},
	{
		field: FieldUserReview, column: colUserReview, names: []string{"userReview", "user_review"},
		decode: func(e *Entry, raw json.RawMessage) error {
			if isNull(raw) {
				e.UserReview = nil
				return nil
			}
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return &ValidationError{Field: "user_review", Message: "must be a string"}
			}
			e.UserReview = &s
			return nil
		},
		bind: func(e *Entry) any {
			if e.UserReview == nil {
				return nil
			}
			return *e.UserReview
		},
	},
	{
		field: FieldTotalSeasons, column: colTotalSeasons, names: []string{"totalSeasons", "total_seasons"},
		decode: func(e *Entry, raw json.RawMessage) error {
			return decodeOptionalInt("total_seasons", raw, &e.TotalSeasons)
		},
		bind: func(e *Entry) any { return optionalInt(e.TotalSeasons) },
	},
	{
		field: FieldTotalEpisodes, column: colTotalEpisodes, names: []string{"totalEpisodes", "total_episodes"},
		decode: func(e *Entry, raw json.RawMessage) error {
			return decodeOptionalInt("total_episodes", raw, &e.TotalEpisodes)
		},
		bind: func(e *Entry) any { return optionalInt(e.TotalEpisodes) },
	},
	{
		field: FieldWatchedEpisodes, column: colWatchedEpisodes, names: []string{"watchedEpisodes", "watched_episodes"},
		decode: func(e *Entry, raw json.RawMessage) error {
			return decodeStrings("watched_episodes", raw, &e.WatchedEpisodes)
		},
		bind: func(e *Entry) any { return encodeStrings(e.WatchedEpisodes) },
	},
}

var fieldsByName = func() map[string]*fieldSpec {
	m := make(map[string]*fieldSpec)
	for i := range fieldSpecs {
		for _, name := range fieldSpecs[i].names {
			m[name] = &fieldSpecs[i]
		}
	}
	return m
}()

// FieldNames returns every accepted input key, in allow-list order.
func FieldNames() []string {
	var names []string
	for _, spec := range fieldSpecs {
		names = append(names, spec.names...)
	}
	return names
}

// pick returns the value for spec from fields, preferring the first
// spelling that carries a non-null value. A field present only as null
// yields null.
func (spec *fieldSpec) pick(fields map[string]json.RawMessage) (json.RawMessage, bool) {
	var fallback json.RawMessage
	found := false
	for _, name := range spec.names {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		if !isNull(raw) {
			return raw, true
		}
		if !found {
			fallback, found = raw, true
		}
	}
	return fallback, found
}

// DecodeEntry builds a new entry from a loosely-typed document. Every
// mutable attribute is read under any of its accepted spellings; unknown
// keys are ignored. Title and type are required.
func DecodeEntry(fields map[string]json.RawMessage) (*Entry, error) {
	e := &Entry{}
	for i := range fieldSpecs {
		spec := &fieldSpecs[i]
		raw, ok := spec.pick(fields)
		if !ok {
			continue
		}
		if err := spec.decode(e, raw); err != nil {
			return nil, err
		}
	}
	if err := validateNew(e); err != nil {
		return nil, err
	}
	return e, nil
}

func validateNew(e *Entry) error {
	e.Title = normalizeTitle(e.Title)
	if e.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if e.Kind != KindMovie && e.Kind != KindSeries {
		return &ValidationError{Field: "type", Message: "must be 'movie' or 'series'"}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// decodeNumber accepts a JSON number or a numeric string.
func decodeNumber(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func decodeOptionalInt(field string, raw json.RawMessage, dst **int) error {
	if isNull(raw) {
		*dst = nil
		return nil
	}
	f, err := decodeNumber(raw)
	if err != nil || f != float64(int(f)) {
		return &ValidationError{Field: field, Message: "must be an integer"}
	}
	n := int(f)
	*dst = &n
	return nil
}

func decodeStrings(field string, raw json.RawMessage, dst *[]string) error {
	if isNull(raw) {
		*dst = []string{}
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return &ValidationError{Field: field, Message: "must be a list of strings"}
	}
	if list == nil {
		list = []string{}
	}
	*dst = list
	return nil
}

// encodeStrings serializes a string list as a JSON array. HTML escaping is
// off so the stored text matches the raw values the genre filter searches.
func encodeStrings(list []string) string {
	if list == nil {
		list = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(list)
	return strings.TrimSuffix(buf.String(), "\n")
}

func optionalInt(n *int) any {
	if n == nil {
		return nil
	}
	return int64(*n)
}

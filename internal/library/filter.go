package library

import (
	"strings"
)

// SortKey selects the ordering of a listing.
type SortKey string

const (
	SortAddedDate SortKey = "addedDate"
	SortTitle     SortKey = "title"
	SortTitleDesc SortKey = "titleDesc"
	SortYear      SortKey = "year"
	SortYearOld   SortKey = "yearOld"
	SortRating    SortKey = "rating"
)

// sortClauses is the closed set of ORDER BY fragments a listing may use.
var sortClauses = map[SortKey]string{
	SortAddedDate: "created_at DESC",
	SortTitle:     "title ASC",
	SortTitleDesc: "title DESC",
	SortYear:      "year DESC",
	SortYearOld:   "year ASC",
	SortRating:    "user_rating DESC NULLS LAST",
}

// SortKeys lists the recognized sort keys.
func SortKeys() []SortKey {
	return []SortKey{SortAddedDate, SortTitle, SortTitleDesc, SortYear, SortYearOld, SortRating}
}

// Known reports whether k is a recognized sort key.
func (k SortKey) Known() bool {
	_, ok := sortClauses[k]
	return ok
}

// orderBy returns the ORDER BY fragment for k. Unknown keys sort by date added.
func (k SortKey) orderBy() string {
	if clause, ok := sortClauses[k]; ok {
		return clause
	}
	return sortClauses[SortAddedDate]
}

const (
	// DefaultLimit is the page size used when a listing doesn't specify one.
	DefaultLimit = 100

	// SearchLimit caps the number of search results.
	SearchLimit = 50

	// filterAll disables a filter.
	filterAll = "all"
)

// ListFilter specifies criteria for listing entries.
// Nil or empty fields don't constrain the listing.
type ListFilter struct {
	Kind    *Kind
	Watched *bool
	Search  string // case-insensitive substring of the title
	Genre   string // case-insensitive substring of the serialized genre list
	Sort    SortKey
	Limit   int // <= 0 uses DefaultLimit
	Offset  int
}

// ParseKindFilter reads a kind filter value; "" and "all" mean no filter.
func ParseKindFilter(s string) (*Kind, error) {
	if s == "" || s == filterAll {
		return nil, nil
	}
	k, err := ParseKind(s)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// ParseWatchedFilter reads a watched filter value that was supplied; "all"
// means no filter, "true" and "watched" select watched entries and anything
// else, including "", selects unwatched ones.
func ParseWatchedFilter(s string) *bool {
	if s == filterAll {
		return nil
	}
	watched := s == "true" || s == "watched"
	return &watched
}

// ParseGenreFilter reads a genre filter value; "all" means no filter.
func ParseGenreFilter(s string) string {
	if s == filterAll {
		return ""
	}
	return strings.TrimSpace(s)
}

package library

import (
	"fmt"
	"strings"

	"github.com/vmunix/marquee/internal/database"
)

// column names a column of the entries table. Only constants of this type
// are ever written into query text; caller input travels as bind values.
type column string

const (
	colID              column = "id"
	colOwner           column = "user_id"
	colExternalRef     column = "tmdb_id"
	colTitle           column = "title"
	colKind            column = "type"
	colYear            column = "year"
	colGenres          column = "genres"
	colMetadata        column = "tmdb_data"
	colWatched         column = "watched"
	colUserRating      column = "user_rating"
	colUserReview      column = "user_review"
	colTotalSeasons    column = "total_seasons"
	colTotalEpisodes   column = "total_episodes"
	colWatchedEpisodes column = "watched_episodes"
	colCreatedAt       column = "created_at"
	colUpdatedAt       column = "updated_at"
)

// entryColumns is the column order scanEntry expects.
var entryColumns = []column{
	colID, colOwner, colExternalRef, colTitle, colKind, colYear, colGenres, colMetadata,
	colWatched, colUserRating, colUserReview, colTotalSeasons, colTotalEpisodes,
	colWatchedEpisodes, colCreatedAt, colUpdatedAt,
}

func joinColumns(cols []column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

var selectColumns = joinColumns(entryColumns)

type operator uint8

const (
	opEquals operator = iota
	opContainsFold
)

// predicate is one conjunct of a WHERE clause.
type predicate struct {
	col   column
	op    operator
	value any
}

func (p predicate) render(d database.Dialect, n int) string {
	switch p.op {
	case opContainsFold:
		return d.ContainsFold(string(p.col), n)
	default:
		return fmt.Sprintf("%s = %s", p.col, d.Placeholder(n))
	}
}

// bind returns the argument for the predicate's placeholder.
func (p predicate) bind(d database.Dialect) any {
	if p.op == opContainsFold {
		return d.FoldPattern(p.value.(string))
	}
	return p.value
}

func equals(col column, v any) predicate {
	return predicate{col: col, op: opEquals, value: v}
}

func containsFold(col column, s string) predicate {
	return predicate{col: col, op: opContainsFold, value: s}
}

// selectQuery is a compiled read over the entries table.
type selectQuery struct {
	where  []predicate
	order  string
	limit  int // 0 = no limit
	offset int
}

// ownedBy starts a query restricted to one owner's entries.
func ownedBy(owner string) selectQuery {
	return selectQuery{where: []predicate{equals(colOwner, owner)}}
}

// compileList translates a listing request into a query. The owner
// predicate always comes first.
func compileList(owner string, f ListFilter) selectQuery {
	q := ownedBy(owner)

	if f.Kind != nil {
		q.where = append(q.where, equals(colKind, string(*f.Kind)))
	}
	if f.Watched != nil {
		q.where = append(q.where, equals(colWatched, *f.Watched))
	}
	if f.Search != "" {
		q.where = append(q.where, containsFold(colTitle, normalizeTitle(f.Search)))
	}
	if f.Genre != "" {
		q.where = append(q.where, containsFold(colGenres, f.Genre))
	}

	q.order = f.Sort.orderBy()

	q.limit = f.Limit
	if q.limit <= 0 {
		q.limit = DefaultLimit
	}
	if f.Offset > 0 {
		q.offset = f.Offset
	}
	return q
}

// render produces the SQL text and its bind arguments.
func (q selectQuery) render(d database.Dialect) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(q.where)+2)

	b.WriteString("SELECT ")
	b.WriteString(selectColumns)
	b.WriteString(" FROM entries")

	for i, p := range q.where {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, p.bind(d))
		b.WriteString(p.render(d, len(args)))
	}

	if q.order != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.order)
	}

	if q.limit > 0 {
		args = append(args, q.limit)
		b.WriteString(" LIMIT ")
		b.WriteString(d.Placeholder(len(args)))
		args = append(args, q.offset)
		b.WriteString(" OFFSET ")
		b.WriteString(d.Placeholder(len(args)))
	}

	return b.String(), args
}

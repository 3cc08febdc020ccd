package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect identifies the SQL flavour spoken by the store.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Valid reports whether d is a supported dialect.
func (d Dialect) Valid() bool {
	return d == DialectSQLite || d == DialectPostgres
}

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

// Placeholder renders the n-th (1-based) bind parameter.
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Rebind rewrites '?' placeholders into the dialect's native form.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString(d.Placeholder(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsFold renders a case-insensitive substring match of expr against
// the bind parameter at position n. The bound value must be produced by
// FoldPattern so that wildcards in user input are matched literally.
//
// SQLite's LIKE folds ASCII only, so the column is passed through
// foldFunc and compared with a pattern folded the same way. Postgres ILIKE
// folds per collation; JSON columns are cast to text so the match runs
// over the serialized document.
func (d Dialect) ContainsFold(expr string, n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf(`%s::text ILIKE %s ESCAPE '\'`, expr, d.Placeholder(n))
	}
	return fmt.Sprintf(`%s(%s) LIKE %s ESCAPE '\'`, foldFunc, expr, d.Placeholder(n))
}

// FoldPattern returns the bind value for a ContainsFold match on s.
func (d Dialect) FoldPattern(s string) string {
	if d == DialectPostgres {
		return LikePattern(s)
	}
	return LikePattern(Fold(s))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern wraps s in wildcards after escaping LIKE metacharacters.
func LikePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

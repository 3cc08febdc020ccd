package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/marquee/internal/database"
)

func TestCompileList_Render(t *testing.T) {
	f := ListFilter{
		Kind:    ptr(KindMovie),
		Watched: ptr(true),
		Search:  "Matrix",
		Genre:   "sci",
		Sort:    SortTitle,
		Limit:   10,
		Offset:  20,
	}

	tests := []struct {
		dialect  database.Dialect
		want     string
		wantArgs []any
	}{
		{
			database.DialectSQLite,
			"SELECT " + selectColumns + ` FROM entries WHERE user_id = ? AND type = ? AND watched = ? AND marquee_fold(title) LIKE ? ESCAPE '\' AND marquee_fold(genres) LIKE ? ESCAPE '\' ORDER BY title ASC LIMIT ? OFFSET ?`,
			[]any{"owner-1", "movie", true, "%matrix%", "%sci%", 10, 20},
		},
		{
			database.DialectPostgres,
			"SELECT " + selectColumns + ` FROM entries WHERE user_id = $1 AND type = $2 AND watched = $3 AND title::text ILIKE $4 ESCAPE '\' AND genres::text ILIKE $5 ESCAPE '\' ORDER BY title ASC LIMIT $6 OFFSET $7`,
			[]any{"owner-1", "movie", true, "%Matrix%", "%sci%", 10, 20},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			query, args := compileList("owner-1", f).render(tt.dialect)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCompileList_Defaults(t *testing.T) {
	query, args := compileList("owner-1", ListFilter{Limit: -5, Offset: -1}).render(database.DialectPostgres)

	assert.Equal(t, "SELECT "+selectColumns+" FROM entries WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3", query)
	assert.Equal(t, []any{"owner-1", DefaultLimit, 0}, args)
}

func TestCompileList_ZeroLimitIsDefaultPage(t *testing.T) {
	assert.Equal(t, DefaultLimit, compileList("owner-1", ListFilter{Limit: 0}).limit)
}

func TestCompileList_OwnerAlwaysFirst(t *testing.T) {
	q := compileList("owner-1", ListFilter{Search: "x", Genre: "y"})

	if assert.NotEmpty(t, q.where) {
		assert.Equal(t, colOwner, q.where[0].col)
		assert.Equal(t, "owner-1", q.where[0].value)
	}
}

func TestCompileList_EscapesWildcards(t *testing.T) {
	_, args := compileList("owner-1", ListFilter{Search: `50%_off\`}).render(database.DialectSQLite)

	assert.Equal(t, `%50\%\_off\\%`, args[1])
}

func TestCompileList_UntrustedSortNeverReachesQuery(t *testing.T) {
	query, _ := compileList("owner-1", ListFilter{Sort: "title; DROP TABLE entries"}).render(database.DialectSQLite)

	assert.NotContains(t, query, "DROP")
	assert.Contains(t, query, "ORDER BY created_at DESC")
}

func TestSelectQuery_NoLimit(t *testing.T) {
	q := ownedBy("owner-1")
	q.order = SortAddedDate.orderBy()

	query, args := q.render(database.DialectSQLite)
	assert.Equal(t, "SELECT "+selectColumns+" FROM entries WHERE user_id = ? ORDER BY created_at DESC", query)
	assert.Equal(t, []any{"owner-1"}, args)
}

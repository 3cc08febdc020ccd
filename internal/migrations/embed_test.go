package migrations

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSchema_MetadataColumnIsJSON(t *testing.T) {
	data, err := embedded.ReadFile("sql/postgres/00001_initial.sql")
	require.NoError(t, err)

	// json keeps the document text as written; jsonb would reorder keys.
	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*tmdb_data\s+JSON,$`), string(data))
}

func TestUp_UnsupportedDialect(t *testing.T) {
	assert.Error(t, Up(nil, "mysql"))
	_, err := Version(nil, "mysql")
	assert.Error(t, err)
}

package library

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrDuplicate), "ErrNotFound should not match ErrDuplicate")
	assert.False(t, errors.Is(ErrNotFound, ErrConstraint), "ErrNotFound should not match ErrConstraint")
	assert.False(t, errors.Is(ErrDuplicate, ErrConstraint), "ErrDuplicate should not match ErrConstraint")
}

func TestMapStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), ErrNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505"}, ErrDuplicate},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, ErrConstraint},
		{"pg bad uuid", &pgconn.PgError{Code: "22P02"}, ErrConstraint},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"), ErrDuplicate},
		{"sqlite check", errors.New("constraint failed: CHECK constraint failed: title <> '' (275)"), ErrConstraint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapStoreError("op", tt.err), tt.want)
		})
	}

	assert.Nil(t, mapStoreError("op", nil))

	var serr *StoreError
	err := mapStoreError("list entries", errors.New("disk I/O error"))
	if assert.ErrorAs(t, err, &serr) {
		assert.Equal(t, "list entries", serr.Op)
	}
	assert.ErrorAs(t, mapStoreError("op", &pgconn.PgError{Code: "53300"}), &serr)
}

func TestValidationError(t *testing.T) {
	assert.Equal(t, "title: is required", (&ValidationError{Field: "title", Message: "is required"}).Error())
	assert.Equal(t, "No updates provided", (&ValidationError{Message: "No updates provided"}).Error())
	assert.True(t, IsValidation(fmt.Errorf("wrap: %w", &ValidationError{Message: "x"})))
	assert.False(t, IsValidation(ErrNotFound))
}

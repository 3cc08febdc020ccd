package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vmunix/marquee/internal/database"
)

// ErrAborted indicates the surrounding transaction can no longer be used.
var ErrAborted = errors.New("transaction aborted")

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// session carries what every operation needs: where to send SQL, which
// dialect to render, and the clock.
type session struct {
	q   querier
	d   database.Dialect
	now func() time.Time
}

// timestamp is the current time at the precision both dialects store.
func (s session) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// Store provides access to catalogue entries.
type Store struct {
	db      *sql.DB
	dialect database.Dialect
	now     func() time.Time
}

// NewStore creates a new library store.
func NewStore(db *sql.DB, dialect database.Dialect) *Store {
	return &Store{db: db, dialect: dialect, now: time.Now}
}

func (s *Store) session() session { return session{q: s.db, d: s.dialect, now: s.now} }

// Begin starts a transaction.
func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapStoreError("begin transaction", err)
	}
	return &Tx{tx: tx, dialect: s.dialect, now: s.now}, nil
}

// WithTx runs fn in a transaction, committing if fn returns nil and
// rolling back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(*Tx) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Tx wraps a database transaction with the same methods as Store.
type Tx struct {
	tx      *sql.Tx
	dialect database.Dialect
	now     func() time.Time
}

func (t *Tx) session() session { return session{q: t.tx, d: t.dialect, now: t.now} }

// Commit commits the transaction.
func (t *Tx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return mapStoreError("commit transaction", err)
	}
	return nil
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

const savepoint = "entry_insert"

// AddEntryIsolated inserts e under a savepoint so that a failed insert
// leaves the rest of the transaction usable. Errors wrapping ErrAborted
// mean the transaction itself is broken.
func (t *Tx) AddEntryIsolated(ctx context.Context, e *Entry) error {
	if _, err := t.tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
		return fmt.Errorf("%w: savepoint: %w", ErrAborted, err)
	}
	if err := addEntry(ctx, t.session(), e); err != nil {
		if _, rbErr := t.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
			return fmt.Errorf("%w: rollback to savepoint: %w", ErrAborted, rbErr)
		}
		if _, relErr := t.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint); relErr != nil {
			return fmt.Errorf("%w: release savepoint: %w", ErrAborted, relErr)
		}
		return err
	}
	if _, err := t.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint); err != nil {
		return fmt.Errorf("%w: release savepoint: %w", ErrAborted, err)
	}
	return nil
}

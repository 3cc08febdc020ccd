package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vmunix/marquee/internal/database"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var (
		e                        Entry
		kind                     string
		ref, review              sql.NullString
		year, seasons, episodes  sql.NullInt64
		rating                   sql.NullFloat64
		genres, metadata, watchd []byte
	)
	if err := row.Scan(
		&e.ID, &e.Owner, &ref, &e.Title, &kind, &year, &genres, &metadata,
		&e.Watched, &rating, &review, &seasons, &episodes, &watchd,
		database.ScanTime(&e.CreatedAt), database.ScanTime(&e.UpdatedAt),
	); err != nil {
		return nil, err
	}

	e.Kind = Kind(kind)
	if ref.Valid {
		r := ExternalRef(ref.String)
		e.ExternalRef = &r
	}
	e.Year = nullInt(year)
	e.TotalSeasons = nullInt(seasons)
	e.TotalEpisodes = nullInt(episodes)
	if rating.Valid {
		e.UserRating = &rating.Float64
	}
	if review.Valid {
		e.UserReview = &review.String
	}
	if len(metadata) > 0 {
		e.ExternalMetadata = json.RawMessage(metadata)
	}
	if err := unmarshalStrings(genres, &e.Genres); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	if err := unmarshalStrings(watchd, &e.WatchedEpisodes); err != nil {
		return nil, fmt.Errorf("decode watched_episodes: %w", err)
	}
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	results := []*Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func unmarshalStrings(data []byte, dst *[]string) error {
	*dst = []string{}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

// validID reports whether id could name an entry. Malformed ids can never
// match a row, so callers treat them as not found.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func addEntry(ctx context.Context, s session, e *Entry) error {
	if e.Owner == "" {
		return &ValidationError{Field: "user_id", Message: "is required"}
	}
	if err := validateNew(e); err != nil {
		return err
	}
	if e.Genres == nil {
		e.Genres = []string{}
	}
	if e.WatchedEpisodes == nil {
		e.WatchedEpisodes = []string{}
	}

	now := s.timestamp()
	id := uuid.NewString()

	cols := make([]column, 0, len(fieldSpecs)+4)
	args := make([]any, 0, len(fieldSpecs)+4)
	cols = append(cols, colID, colOwner)
	args = append(args, id, e.Owner)
	for i := range fieldSpecs {
		cols = append(cols, fieldSpecs[i].column)
		args = append(args, fieldSpecs[i].bind(e))
	}
	cols = append(cols, colCreatedAt, colUpdatedAt)
	args = append(args, now, now)

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = s.d.Placeholder(i + 1)
	}

	query := "INSERT INTO entries (" + joinColumns(cols) + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	if _, err := s.q.ExecContext(ctx, query, args...); err != nil {
		return mapStoreError("insert entry", err)
	}

	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

// AddEntry inserts a new entry for e.Owner.
// Sets ID, CreatedAt, and UpdatedAt on the struct.
func (s *Store) AddEntry(ctx context.Context, e *Entry) error { return addEntry(ctx, s.session(), e) }

// AddEntry inserts a new entry within a transaction.
func (t *Tx) AddEntry(ctx context.Context, e *Entry) error { return addEntry(ctx, t.session(), e) }

func queryEntries(ctx context.Context, s session, op string, q selectQuery) ([]*Entry, error) {
	query, args := q.render(s.d)
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapStoreError(op, err)
	}
	defer func() { _ = rows.Close() }()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, mapStoreError(op, err)
	}
	return entries, nil
}

func getEntry(ctx context.Context, s session, owner, id string) (*Entry, error) {
	if !validID(id) {
		return nil, fmt.Errorf("get entry %s: %w", id, ErrNotFound)
	}
	q := ownedBy(owner)
	q.where = append(q.where, equals(colID, id))

	query, args := q.render(s.d)
	e, err := scanEntry(s.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapStoreError("get entry "+id, err)
	}
	return e, nil
}

// GetEntry retrieves one of owner's entries.
// Returns ErrNotFound if the entry does not exist or belongs to someone else.
func (s *Store) GetEntry(ctx context.Context, owner, id string) (*Entry, error) {
	return getEntry(ctx, s.session(), owner, id)
}

// GetEntry retrieves one of owner's entries within a transaction.
func (t *Tx) GetEntry(ctx context.Context, owner, id string) (*Entry, error) {
	return getEntry(ctx, t.session(), owner, id)
}

// ListEntries returns one page of owner's entries matching the filter.
// The page length is the only count reported; no total across pages is
// computed.
func (s *Store) ListEntries(ctx context.Context, owner string, f ListFilter) ([]*Entry, error) {
	return queryEntries(ctx, s.session(), "list entries", compileList(owner, f))
}

// ListEntries returns one page of owner's entries within a transaction.
func (t *Tx) ListEntries(ctx context.Context, owner string, f ListFilter) ([]*Entry, error) {
	return queryEntries(ctx, t.session(), "list entries", compileList(owner, f))
}

// AllEntries returns every entry owner has, newest first.
func (s *Store) AllEntries(ctx context.Context, owner string) ([]*Entry, error) {
	q := ownedBy(owner)
	q.order = SortAddedDate.orderBy()
	return queryEntries(ctx, s.session(), "list all entries", q)
}

// SearchEntries returns up to SearchLimit of owner's entries whose title
// contains text, ignoring case, newest first.
func (s *Store) SearchEntries(ctx context.Context, owner, text string) ([]*Entry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Message: "Search query required"}
	}
	return queryEntries(ctx, s.session(), "search entries", compileList(owner, ListFilter{
		Search: text,
		Sort:   SortAddedDate,
		Limit:  SearchLimit,
	}))
}

func updateEntry(ctx context.Context, s session, owner, id string, p Patch) (*Entry, error) {
	if p.Len() == 0 {
		return nil, &ValidationError{Message: "No updates provided"}
	}
	if !validID(id) {
		return nil, fmt.Errorf("update entry %s: %w", id, ErrNotFound)
	}

	query, args := p.render(s.d, owner, id, s.timestamp())
	e, err := scanEntry(s.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapStoreError("update entry "+id, err)
	}
	return e, nil
}

// UpdateEntry applies p to one of owner's entries and refreshes UpdatedAt.
// Returns ErrNotFound if the entry does not exist or belongs to someone else.
func (s *Store) UpdateEntry(ctx context.Context, owner, id string, p Patch) (*Entry, error) {
	return updateEntry(ctx, s.session(), owner, id, p)
}

// UpdateEntry applies p within a transaction.
func (t *Tx) UpdateEntry(ctx context.Context, owner, id string, p Patch) (*Entry, error) {
	return updateEntry(ctx, t.session(), owner, id, p)
}

func deleteEntry(ctx context.Context, s session, owner, id string) (*Entry, error) {
	if !validID(id) {
		return nil, fmt.Errorf("delete entry %s: %w", id, ErrNotFound)
	}
	query := s.d.Rebind("DELETE FROM entries WHERE id = ? AND user_id = ? RETURNING " + selectColumns)
	e, err := scanEntry(s.q.QueryRowContext(ctx, query, id, owner))
	if err != nil {
		return nil, mapStoreError("delete entry "+id, err)
	}
	return e, nil
}

// DeleteEntry removes one of owner's entries and returns what was removed.
// Returns ErrNotFound if the entry does not exist or belongs to someone else.
func (s *Store) DeleteEntry(ctx context.Context, owner, id string) (*Entry, error) {
	return deleteEntry(ctx, s.session(), owner, id)
}

// DeleteEntry removes one of owner's entries within a transaction.
func (t *Tx) DeleteEntry(ctx context.Context, owner, id string) (*Entry, error) {
	return deleteEntry(ctx, t.session(), owner, id)
}

// DeleteAllEntries removes every entry owner has and reports how many went.
func (t *Tx) DeleteAllEntries(ctx context.Context, owner string) (int64, error) {
	result, err := t.tx.ExecContext(ctx, t.dialect.Rebind("DELETE FROM entries WHERE user_id = ?"), owner)
	if err != nil {
		return 0, mapStoreError("delete all entries", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, mapStoreError("rows affected", err)
	}
	return n, nil
}

// CreateEntry decodes a loosely-typed document into a new entry for owner
// and stores it.
func (s *Store) CreateEntry(ctx context.Context, owner string, fields map[string]json.RawMessage) (*Entry, error) {
	e, err := DecodeEntry(fields)
	if err != nil {
		return nil, err
	}
	e.Owner = owner
	if err := s.AddEntry(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

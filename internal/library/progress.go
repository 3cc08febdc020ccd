package library

import (
	"context"
	"fmt"
)

func toggleWatched(ctx context.Context, s session, owner, id string) (*Entry, error) {
	if !validID(id) {
		return nil, fmt.Errorf("toggle watched %s: %w", id, ErrNotFound)
	}
	query := s.d.Rebind("UPDATE entries SET watched = NOT watched, updated_at = ? WHERE id = ? AND user_id = ? RETURNING " + selectColumns)
	e, err := scanEntry(s.q.QueryRowContext(ctx, query, s.timestamp(), id, owner))
	if err != nil {
		return nil, mapStoreError("toggle watched "+id, err)
	}
	return e, nil
}

// ToggleWatched flips the watched flag of one of owner's entries and
// returns the entry as it is afterwards. The episode list is untouched.
func (s *Store) ToggleWatched(ctx context.Context, owner, id string) (*Entry, error) {
	return toggleWatched(ctx, s.session(), owner, id)
}

// ToggleWatched flips the watched flag within a transaction.
func (t *Tx) ToggleWatched(ctx context.Context, owner, id string) (*Entry, error) {
	return toggleWatched(ctx, t.session(), owner, id)
}

func setWatchedEpisodes(ctx context.Context, s session, owner, id string, episodes []string) (*Entry, error) {
	if !validID(id) {
		return nil, fmt.Errorf("set episodes %s: %w", id, ErrNotFound)
	}
	query := s.d.Rebind("UPDATE entries SET watched_episodes = ?, updated_at = ? WHERE id = ? AND user_id = ? RETURNING " + selectColumns)
	e, err := scanEntry(s.q.QueryRowContext(ctx, query, encodeStrings(episodes), s.timestamp(), id, owner))
	if err != nil {
		return nil, mapStoreError("set episodes "+id, err)
	}
	return e, nil
}

// SetWatchedEpisodes replaces the watched episode list of one of owner's
// entries. Identifiers are stored as given, without checking them against
// the season or episode counts.
func (s *Store) SetWatchedEpisodes(ctx context.Context, owner, id string, episodes []string) (*Entry, error) {
	return setWatchedEpisodes(ctx, s.session(), owner, id, episodes)
}

// SetWatchedEpisodes replaces the watched episode list within a transaction.
func (t *Tx) SetWatchedEpisodes(ctx context.Context, owner, id string, episodes []string) (*Entry, error) {
	return setWatchedEpisodes(ctx, t.session(), owner, id, episodes)
}

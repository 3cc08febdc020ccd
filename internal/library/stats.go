package library

import "context"

// Stats counts owner's entries in a single read.
func (s *Store) Stats(ctx context.Context, owner string) (*Stats, error) {
	st := &Stats{}

	// COALESCE handles SUM over no rows.
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN type = 'movie' THEN 1 ELSE 0 END), 0) AS movies,
			COALESCE(SUM(CASE WHEN type = 'series' THEN 1 ELSE 0 END), 0) AS series,
			COALESCE(SUM(CASE WHEN watched THEN 1 ELSE 0 END), 0) AS watched
		FROM entries
		WHERE user_id = ?`), owner,
	).Scan(&st.Total, &st.Movies, &st.Series, &st.Watched)
	if err != nil {
		return nil, mapStoreError("get stats", err)
	}
	return st, nil
}

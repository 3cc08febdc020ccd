// Package transfer exports a user's catalogue as a versioned document and
// replaces it from one.
package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/vmunix/marquee/internal/library"
)

// Version is written into every exported document.
const Version = "2.0"

// Document is the export format. Field names match documents produced by
// earlier releases so they can be imported unchanged.
type Document struct {
	Version    string           `json:"version"`
	ExportDate time.Time        `json:"exportDate"`
	Movies     []*library.Entry `json:"movies"`
}

// Result summarizes an import. Records that failed are counted in Total
// but not in Imported.
type Result struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// Service runs exports and imports against the entry store.
type Service struct {
	store *library.Store
	log   *slog.Logger
	now   func() time.Time
}

// New creates a transfer service.
func New(store *library.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store: store,
		log:   log.With("component", "transfer"),
		now:   time.Now,
	}
}

// Export returns every entry owner has, newest first.
func (s *Service) Export(ctx context.Context, owner string) (*Document, error) {
	entries, err := s.store.AllEntries(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &Document{
		Version:    Version,
		ExportDate: s.now().UTC(),
		Movies:     entries,
	}, nil
}

// Import replaces all of owner's entries with records. The delete and the
// inserts share one transaction; each insert runs under its own savepoint,
// so a malformed record is logged and skipped without disturbing the rest.
func (s *Service) Import(ctx context.Context, owner string, records []json.RawMessage) (*Result, error) {
	result := &Result{Total: len(records)}

	err := s.store.WithTx(ctx, func(tx *library.Tx) error {
		removed, err := tx.DeleteAllEntries(ctx, owner)
		if err != nil {
			return err
		}
		s.log.Debug("cleared entries for import", "owner", owner, "removed", removed)

		for i, raw := range records {
			e, err := decodeRecord(raw)
			if err != nil {
				s.log.Warn("skipping import record", "owner", owner, "index", i, "error", err)
				continue
			}
			e.Owner = owner

			if err := tx.AddEntryIsolated(ctx, e); err != nil {
				if errors.Is(err, library.ErrAborted) {
					return err
				}
				s.log.Warn("skipping import record", "owner", owner, "index", i, "title", e.Title, "error", err)
				continue
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("import complete", "owner", owner, "imported", result.Imported, "total", result.Total)
	return result, nil
}

// decodeRecord reads one exported entry. Absent external metadata becomes
// an empty object; an explicit null is kept so exports round-trip.
func decodeRecord(raw json.RawMessage) (*library.Entry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, &library.ValidationError{Message: "record must be an object"}
	}
	e, err := library.DecodeEntry(fields)
	if err != nil {
		return nil, err
	}
	_, snake := fields["tmdb_data"]
	_, camel := fields["tmdbData"]
	if !snake && !camel {
		e.ExternalMetadata = json.RawMessage(`{}`)
	}
	return e, nil
}

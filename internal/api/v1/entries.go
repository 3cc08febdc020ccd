package v1

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vmunix/marquee/internal/library"
)

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	kind, err := library.ParseKindFilter(q.Get("type"))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to fetch movies")
		return
	}

	filter := library.ListFilter{
		Kind:   kind,
		Search: q.Get("search"),
		Genre:  library.ParseGenreFilter(q.Get("genre")),
		Sort:   library.SortKey(q.Get("sortBy")),
		Limit:  queryInt(r, "limit", library.DefaultLimit),
		Offset: queryInt(r, "offset", 0),
	}
	if q.Has("watched") {
		filter.Watched = library.ParseWatchedFilter(q.Get("watched"))
	}

	entries, err := s.deps.Catalog.ListEntries(r.Context(), owner(r), filter)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to fetch movies")
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Movies: entries, Total: len(entries)})
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.deps.Catalog.GetEntry(r.Context(), owner(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to fetch movie")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	var fields map[string]json.RawMessage
	if !decodeJSON(w, r, &fields) {
		return
	}

	e, err := s.deps.Catalog.CreateEntry(r.Context(), owner(r), fields)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to add movie")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) updateEntry(w http.ResponseWriter, r *http.Request) {
	var fields map[string]json.RawMessage
	if !decodeJSON(w, r, &fields) {
		return
	}

	patch, err := library.ParsePatch(fields)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to update movie")
		return
	}

	e, err := s.deps.Catalog.UpdateEntry(r.Context(), owner(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to update movie")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.deps.Catalog.DeleteEntry(r.Context(), owner(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to delete movie")
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Message: "Movie deleted", Movie: e})
}

func (s *Server) toggleWatched(w http.ResponseWriter, r *http.Request) {
	e, err := s.deps.Catalog.ToggleWatched(r.Context(), owner(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to toggle watched status")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) setEpisodes(w http.ResponseWriter, r *http.Request) {
	var req episodesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := s.deps.Catalog.SetWatchedEpisodes(r.Context(), owner(r), chi.URLParam(r, "id"), req.Episodes)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to update episodes")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.deps.Catalog.Stats(r.Context(), owner(r))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) searchEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.deps.Catalog.SearchEntries(r.Context(), owner(r), r.URL.Query().Get("q"))
	if err != nil {
		s.writeStoreError(w, r, err, "Search failed")
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Movies: entries})
}

func (s *Server) exportEntries(w http.ResponseWriter, r *http.Request) {
	doc, err := s.deps.Transfer.Export(r.Context(), owner(r))
	if err != nil {
		s.writeStoreError(w, r, err, "Export failed")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) importEntries(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var records []json.RawMessage
	if !bytes.HasPrefix(bytes.TrimSpace(req.Movies), []byte("[")) || json.Unmarshal(req.Movies, &records) != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "Invalid import data")
		return
	}

	result, err := s.deps.Transfer.Import(r.Context(), owner(r), records)
	if err != nil {
		s.writeStoreError(w, r, err, "Import failed")
		return
	}
	writeJSON(w, http.StatusOK, importResponse{
		Message:  "Import successful",
		Imported: result.Imported,
		Total:    result.Total,
	})
}

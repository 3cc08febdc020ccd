// Package v1 implements the REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/library"
)

// maxBodyBytes caps JSON request bodies, large enough for a full import.
const maxBodyBytes = 10 << 20

// Error codes carried in every error response.
const (
	codeValidation = "VALIDATION_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeAuth       = "UNAUTHORIZED"
	codeTooLarge   = "PAYLOAD_TOO_LARGE"
	codeInternal   = "INTERNAL_ERROR"
)

// Config holds API server configuration.
type Config struct {
	CORSOrigin     string
	RequestTimeout time.Duration
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// NewWithDeps creates a new v1 API server with explicit dependencies.
func NewWithDeps(deps ServerDeps, cfg Config, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log.With("component", "api")}, nil
}

// Handler returns the router serving every API route.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(allowOrigin(s.cfg.CORSOrigin))
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	notFound := func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "Route not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health)

		r.Post("/auth/register", s.register)
		r.Post("/auth/login", s.login)

		r.Route("/movies", func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/", s.listEntries)
			r.Post("/", s.createEntry)
			r.Get("/stats", s.getStats)
			r.Get("/search", s.searchEntries)
			r.Get("/export", s.exportEntries)
			r.Post("/import", s.importEntries)
			r.Get("/{id}", s.getEntry)
			r.Put("/{id}", s.updateEntry)
			r.Delete("/{id}", s.deleteEntry)
			r.Post("/{id}/toggle-watched", s.toggleWatched)
			r.Put("/{id}/episodes", s.setEpisodes)
		})
	})

	return r
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON reads a size-limited JSON body into dst, writing the error
// response itself when it fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, codeValidation, "Invalid JSON body")
		return false
	}
	return true
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// owner returns the authenticated user id; requireAuth guarantees one.
func owner(r *http.Request) string {
	id, _ := auth.OwnerFromContext(r.Context())
	return id
}

// writeStoreError maps a catalogue error to a response. Unexpected errors
// are logged and answered with message only.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var verr *library.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, codeValidation, verr.Error())
	case errors.Is(err, library.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "Movie not found")
	case errors.Is(err, library.ErrConstraint), errors.Is(err, library.ErrDuplicate):
		writeError(w, http.StatusBadRequest, codeValidation, "Invalid movie data")
	default:
		s.log.Error(message,
			"owner", owner(r),
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeInternal, message)
	}
}

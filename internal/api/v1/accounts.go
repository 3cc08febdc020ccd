package v1

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/vmunix/marquee/internal/auth"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Message: "Server is running"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := s.deps.Accounts.Register(r.Context(), req.Email, req.Password, req.Name)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, codeValidation, "Email and password required")
		return
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, codeValidation, "Email already registered")
		return
	case err != nil:
		s.log.Error("register failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Registration failed")
		return
	}

	s.writeSession(w, r, http.StatusCreated, u, "Registration failed")
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := s.deps.Accounts.Authenticate(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, codeValidation, "Email and password required")
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, codeAuth, "Invalid credentials")
		return
	case err != nil:
		s.log.Error("login failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Login failed")
		return
	}

	s.writeSession(w, r, http.StatusOK, u, "Login failed")
}

func (s *Server) writeSession(w http.ResponseWriter, r *http.Request, code int, u *auth.User, failure string) {
	token, err := s.deps.Tokens.Issue(u)
	if err != nil {
		s.log.Error("issue token", "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, failure)
		return
	}
	writeJSON(w, code, authResponse{Token: token, User: u})
}

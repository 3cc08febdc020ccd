package v1

import (
	"encoding/json"

	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/library"
)

// listResponse is the response for GET /movies. Total is the length of the
// page returned, not the size of the whole collection.
type listResponse struct {
	Movies []*library.Entry `json:"movies"`
	Total  int              `json:"total"`
}

// searchResponse is the response for GET /movies/search.
type searchResponse struct {
	Movies []*library.Entry `json:"movies"`
}

type deleteResponse struct {
	Message string         `json:"message"`
	Movie   *library.Entry `json:"movie"`
}

type importRequest struct {
	Movies json.RawMessage `json:"movies"`
}

type importResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Total    int    `json:"total"`
}

type episodesRequest struct {
	Episodes []string `json:"episodes"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

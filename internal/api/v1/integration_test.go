package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/database"
	"github.com/vmunix/marquee/internal/library"
	"github.com/vmunix/marquee/internal/transfer"
)

type integrationEnv struct {
	server *httptest.Server
}

func setupIntegration(t *testing.T) *integrationEnv {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	db, err := database.Open(context.Background(), database.Config{
		Dialect: database.DialectSQLite,
		Path:    filepath.Join(t.TempDir(), "api.db"),
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := library.NewStore(db.DB, db.Dialect)
	srv, err := NewWithDeps(ServerDeps{
		Catalog:  store,
		Transfer: transfer.New(store, logger),
		Accounts: auth.NewUserStore(db.DB, db.Dialect, bcrypt.MinCost),
		Tokens:   auth.NewTokenManager("integration-secret", "marquee", time.Hour),
	}, Config{}, logger)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &integrationEnv{server: ts}
}

func (env *integrationEnv) call(t *testing.T, token, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, env.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (env *integrationEnv) register(t *testing.T, email string) string {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	status := env.call(t, "", http.MethodPost, "/api/auth/register", map[string]string{"email": email, "password": "pw", "name": "Tester"}, &resp)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestIntegration_CatalogLifecycle(t *testing.T) {
	env := setupIntegration(t)
	alice := env.register(t, "alice@example.com")
	bob := env.register(t, "bob@example.com")

	var login struct {
		Token string     `json:"token"`
		User  *auth.User `json:"user"`
	}
	status := env.call(t, "", http.MethodPost, "/api/auth/login", map[string]string{"email": "ALICE@example.com", "password": "pw"}, &login)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice@example.com", login.User.Email)

	var dune library.Entry
	status = env.call(t, alice, http.MethodPost, "/api/movies", map[string]any{
		"title": "Dune", "type": "movie", "year": 2021, "genres": []string{"Sci-Fi"}, "tmdb_id": 438631,
	}, &dune)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, library.ExternalRef("438631"), *dune.ExternalRef)

	var lost library.Entry
	status = env.call(t, alice, http.MethodPost, "/api/movies", map[string]any{
		"title": "Lost", "type": "tv", "totalSeasons": 6,
	}, &lost)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, library.KindSeries, lost.Kind)

	var stats library.Stats
	require.Equal(t, http.StatusOK, env.call(t, alice, http.MethodGet, "/api/movies/stats", nil, &stats))
	assert.Equal(t, library.Stats{Total: 2, Movies: 1, Series: 1}, stats)

	var toggled library.Entry
	require.Equal(t, http.StatusOK, env.call(t, alice, http.MethodPost, "/api/movies/"+dune.ID+"/toggle-watched", nil, &toggled))
	assert.True(t, toggled.Watched)

	require.Equal(t, http.StatusOK, env.call(t, alice, http.MethodGet, "/api/movies/stats", nil, &stats))
	assert.Equal(t, 1, stats.Watched)

	var withEpisodes library.Entry
	require.Equal(t, http.StatusOK, env.call(t, alice, http.MethodPut, "/api/movies/"+lost.ID+"/episodes",
		map[string]any{"episodes": []string{"S1E1"}}, &withEpisodes))
	assert.Equal(t, []string{"S1E1"}, withEpisodes.WatchedEpisodes)

	var list listResponse
	require.Equal(t, http.StatusOK, env.call(t, alice, http.MethodGet, "/api/movies?type=series", nil, &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, lost.ID, list.Movies[0].ID)

	// Bob sees none of Alice's entries.
	require.Equal(t, http.StatusOK, env.call(t, bob, http.MethodGet, "/api/movies", nil, &list))
	assert.Zero(t, list.Total)
	var errResp errorResponse
	assert.Equal(t, http.StatusNotFound, env.call(t, bob, http.MethodGet, "/api/movies/"+dune.ID, nil, &errResp))
	assert.Equal(t, http.StatusNotFound, env.call(t, bob, http.MethodDelete, "/api/movies/"+dune.ID, nil, &errResp))

	var updated library.Entry
	require.Equal(t, http.StatusOK, env.call(t, alice, http.MethodPut, "/api/movies/"+dune.ID, map[string]any{"userRating": 9}, &updated))
	assert.Equal(t, 9.0, *updated.UserRating)

	var search searchResponse
	require.Equal(t, http.StatusOK, env.call(t, alice, http.MethodGet, "/api/movies/search?q=DUNE", nil, &search))
	require.Len(t, search.Movies, 1)

	var deleted deleteResponse
	require.Equal(t, http.StatusOK, env.call(t, alice, http.MethodDelete, "/api/movies/"+lost.ID, nil, &deleted))
	assert.Equal(t, "Movie deleted", deleted.Message)
	assert.Equal(t, lost.ID, deleted.Movie.ID)
}

func TestIntegration_ExportImport(t *testing.T) {
	env := setupIntegration(t)
	token := env.register(t, "carol@example.com")

	for _, title := range []string{"Alien", "Aliens"} {
		require.Equal(t, http.StatusCreated, env.call(t, token, http.MethodPost, "/api/movies",
			map[string]any{"title": title, "type": "movie"}, nil))
	}

	var doc struct {
		Version string            `json:"version"`
		Movies  []json.RawMessage `json:"movies"`
	}
	require.Equal(t, http.StatusOK, env.call(t, token, http.MethodGet, "/api/movies/export", nil, &doc))
	assert.Equal(t, "2.0", doc.Version)
	require.Len(t, doc.Movies, 2)

	records := append(doc.Movies, json.RawMessage(`{"type":"movie"}`))
	var result importResponse
	require.Equal(t, http.StatusOK, env.call(t, token, http.MethodPost, "/api/movies/import", map[string]any{"movies": records}, &result))
	assert.Equal(t, importResponse{Message: "Import successful", Imported: 2, Total: 3}, result)

	var list listResponse
	require.Equal(t, http.StatusOK, env.call(t, token, http.MethodGet, "/api/movies?sortBy=title", nil, &list))
	require.Len(t, list.Movies, 2)
	assert.Equal(t, "Alien", list.Movies[0].Title)
	assert.Equal(t, "Aliens", list.Movies[1].Title)
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/library"
	"github.com/vmunix/marquee/internal/transfer"
)

// Client wraps HTTP calls to the marquee server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new marquee API client. token may be empty for the
// account endpoints.
func NewClient(serverURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

func (c *Client) do(method, path string, body, result any) error {
	raw, err := c.doRaw(method, path, body)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doRaw(method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal error: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
		var envelope struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Code = envelope.Code
		}
		return nil, apiErr
	}
	return data, nil
}

// API response types (mirror server types)

type AuthResponse struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user"`
}

type ListResponse struct {
	Movies []*library.Entry `json:"movies"`
	Total  int              `json:"total"`
}

type DeleteResponse struct {
	Message string         `json:"message"`
	Movie   *library.Entry `json:"movie"`
}

type ImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Total    int    `json:"total"`
}

// ListOptions are the query parameters of a listing. Zero values are omitted.
type ListOptions struct {
	Type    string
	Watched string
	Search  string
	Genre   string
	Sort    string
	Limit   int
	Offset  int
}

func (o ListOptions) query() string {
	params := url.Values{}
	set := func(k, v string) {
		if v != "" {
			params.Set(k, v)
		}
	}
	set("type", o.Type)
	set("watched", o.Watched)
	set("search", o.Search)
	set("genre", o.Genre)
	set("sortBy", o.Sort)
	if o.Limit > 0 {
		params.Set("limit", fmt.Sprint(o.Limit))
	}
	if o.Offset > 0 {
		params.Set("offset", fmt.Sprint(o.Offset))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func moviePath(id string) string {
	return "/api/movies/" + url.PathEscape(id)
}

func (c *Client) Register(email, password, name string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"email": email, "password": password, "name": name}
	if err := c.do(http.MethodPost, "/api/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListMovies(opts ListOptions) (*ListResponse, error) {
	var resp ListResponse
	if err := c.do(http.MethodGet, "/api/movies"+opts.query(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetMovie(id string) (*library.Entry, error) {
	var e library.Entry
	if err := c.do(http.MethodGet, moviePath(id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) CreateMovie(fields map[string]any) (*library.Entry, error) {
	var e library.Entry
	if err := c.do(http.MethodPost, "/api/movies", fields, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) UpdateMovie(id string, fields map[string]json.RawMessage) (*library.Entry, error) {
	var e library.Entry
	if err := c.do(http.MethodPut, moviePath(id), fields, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) DeleteMovie(id string) (*DeleteResponse, error) {
	var resp DeleteResponse
	if err := c.do(http.MethodDelete, moviePath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ToggleWatched(id string) (*library.Entry, error) {
	var e library.Entry
	if err := c.do(http.MethodPost, moviePath(id)+"/toggle-watched", nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) SetEpisodes(id string, episodes []string) (*library.Entry, error) {
	if episodes == nil {
		episodes = []string{}
	}
	var e library.Entry
	body := map[string][]string{"episodes": episodes}
	if err := c.do(http.MethodPut, moviePath(id)+"/episodes", body, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) Stats() (*library.Stats, error) {
	var s library.Stats
	if err := c.do(http.MethodGet, "/api/movies/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Search(query string) ([]*library.Entry, error) {
	var resp struct {
		Movies []*library.Entry `json:"movies"`
	}
	path := "/api/movies/search?q=" + url.QueryEscape(query)
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// Export returns the export document exactly as the server wrote it.
func (c *Client) Export() ([]byte, *transfer.Document, error) {
	raw, err := c.doRaw(http.MethodGet, "/api/movies/export", nil)
	if err != nil {
		return nil, nil, err
	}
	var doc transfer.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode export: %w", err)
	}
	return raw, &doc, nil
}

// Import replaces the caller's catalogue with records, a JSON array.
func (c *Client) Import(records json.RawMessage) (*ImportResponse, error) {
	var resp ImportResponse
	body := map[string]json.RawMessage{"movies": records}
	if err := c.do(http.MethodPost, "/api/movies/import", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package v1

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/library"
	"github.com/vmunix/marquee/internal/transfer"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Catalog defines the entry operations the API exposes. Every method is
// scoped to owner.
type Catalog interface {
	ListEntries(ctx context.Context, owner string, f library.ListFilter) ([]*library.Entry, error)
	GetEntry(ctx context.Context, owner, id string) (*library.Entry, error)
	CreateEntry(ctx context.Context, owner string, fields map[string]json.RawMessage) (*library.Entry, error)
	UpdateEntry(ctx context.Context, owner, id string, p library.Patch) (*library.Entry, error)
	DeleteEntry(ctx context.Context, owner, id string) (*library.Entry, error)
	ToggleWatched(ctx context.Context, owner, id string) (*library.Entry, error)
	SetWatchedEpisodes(ctx context.Context, owner, id string, episodes []string) (*library.Entry, error)
	SearchEntries(ctx context.Context, owner, text string) ([]*library.Entry, error)
	Stats(ctx context.Context, owner string) (*library.Stats, error)
}

// Transfer defines bulk export and import.
type Transfer interface {
	Export(ctx context.Context, owner string) (*transfer.Document, error)
	Import(ctx context.Context, owner string, records []json.RawMessage) (*transfer.Result, error)
}

// Accounts defines registration and login.
type Accounts interface {
	Register(ctx context.Context, email, password, name string) (*auth.User, error)
	Authenticate(ctx context.Context, email, password string) (*auth.User, error)
}

// Tokens issues and verifies bearer tokens.
type Tokens interface {
	Issue(u *auth.User) (string, error)
	Verify(token string) (*auth.Claims, error)
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	Catalog  Catalog
	Transfer Transfer
	Accounts Accounts
	Tokens   Tokens
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	if d.Transfer == nil {
		return errors.New("transfer service is required")
	}
	if d.Accounts == nil {
		return errors.New("accounts store is required")
	}
	if d.Tokens == nil {
		return errors.New("token manager is required")
	}
	return nil
}

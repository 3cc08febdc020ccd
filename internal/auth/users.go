// Package auth manages user accounts and the bearer tokens that identify
// them to the API.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmunix/marquee/internal/database"
)

var (
	// ErrMissingCredentials indicates an empty email or password.
	ErrMissingCredentials = errors.New("email and password required")

	// ErrEmailTaken indicates the email already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is an account that owns catalogue entries.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// UserStore persists accounts.
type UserStore struct {
	db      *sql.DB
	dialect database.Dialect
	cost    int
	now     func() time.Time
}

// NewUserStore creates a user store hashing passwords at the given bcrypt
// cost. A cost of zero uses bcrypt.DefaultCost.
func NewUserStore(db *sql.DB, dialect database.Dialect, cost int) *UserStore {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserStore{db: db, dialect: dialect, cost: cost, now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. Emails are stored lower-cased and the
// unique index on email decides which of two concurrent registrations wins.
func (s *UserStore) Register(ctx context.Context, email, password, name string) (*User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      strings.TrimSpace(name),
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	_, err = s.db.ExecContext(ctx,
		s.dialect.Rebind("INSERT INTO users (id, email, name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)"),
		u.ID, u.Email, u.Name, string(hash), u.CreatedAt,
	)
	if database.IsUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// Authenticate checks a password against the stored hash. Unknown emails
// and wrong passwords both return ErrInvalidCredentials.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var (
		u    User
		hash string
	)
	err := s.db.QueryRowContext(ctx,
		s.dialect.Rebind("SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?"), email,
	).Scan(&u.ID, &u.Email, &u.Name, &hash, database.ScanTime(&u.CreatedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

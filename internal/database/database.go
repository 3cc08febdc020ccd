// Package database opens the entry store and applies migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/vmunix/marquee/internal/migrations"
)

// Config describes how to reach the store.
type Config struct {
	Dialect         Dialect
	Path            string // sqlite file path
	URL             string // postgres DSN
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  uint
}

// DB is a connection pool bound to its dialect.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// sqlitePragmas are applied on every new sqlite connection via the DSN.
// _time_format=sqlite stores timestamps in a form that sorts as text.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_time_format=sqlite"

func (c Config) dsn() (string, error) {
	switch c.Dialect {
	case DialectSQLite:
		if c.Path == "" {
			return "", fmt.Errorf("sqlite path is required")
		}
		return "file:" + c.Path + "?" + sqlitePragmas, nil
	case DialectPostgres:
		if c.URL == "" {
			return "", fmt.Errorf("postgres url is required")
		}
		return c.URL, nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", c.Dialect)
	}
}

// Open connects to the store, waits for it to answer, and runs migrations.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn, err := cfg.dsn()
	if err != nil {
		return nil, err
	}

	if cfg.Dialect == DialectSQLite {
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	conn, err := sql.Open(cfg.Dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	applyPool(conn, cfg)

	attempts := cfg.ConnectRetries
	if attempts == 0 {
		attempts = 1
	}
	err = retry.Do(
		func() error { return conn.PingContext(ctx) },
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("database not ready, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := migrations.Up(conn, string(cfg.Dialect)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &DB{DB: conn, Dialect: cfg.Dialect}, nil
}

func applyPool(conn *sql.DB, cfg Config) {
	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		if cfg.Dialect == DialectSQLite {
			maxOpen = 8
		} else {
			maxOpen = 25
		}
	}
	conn.SetMaxOpenConns(maxOpen)

	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 5
	}
	conn.SetMaxIdleConns(maxIdle)

	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

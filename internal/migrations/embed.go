// Package migrations provides embedded goose SQL migrations for each supported dialect.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var embedded embed.FS

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// gooseDialects maps a database driver name to the goose dialect and migration directory.
var gooseDialects = map[string]struct {
	dialect string
	dir     string
}{
	"sqlite":   {dialect: "sqlite3", dir: "sql/sqlite"},
	"postgres": {dialect: "postgres", dir: "sql/postgres"},
}

// Up applies all pending migrations for the given dialect ("sqlite" or "postgres").
func Up(db *sql.DB, dialect string) error {
	target, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedded)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Version reports the currently applied migration version.
func Version(db *sql.DB, dialect string) (int64, error) {
	target, ok := gooseDialects[dialect]
	if !ok {
		return 0, fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedded)
	if err := goose.SetDialect(target.dialect); err != nil {
		return 0, fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.GetDBVersion(db)
}

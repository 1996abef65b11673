package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"assistente-gestao/internal/task/repository"
	"assistente-gestao/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed task Repository. The schema must already be
// migrated; see Migrate.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// Open opens (creating if needed) the database file at path with foreign keys on.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)
	return db, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

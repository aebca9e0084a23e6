// Package sqlite implements the inventory repository over SQLite, using the
// descriptor-driven query layer for all tabular listings.
package sqlite

import (
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"inventory-master/internal/inventory/repository"
	"inventory-master/internal/query"
	"inventory-master/pkg/log"
)

//go:embed schema.sql
var schemaSQL string

type implRepository struct {
	db   *sqlx.DB
	l    log.Logger
	exec *query.Executor
	reg  query.Registry
}

// New creates a SQLite-backed Repository for the inventory domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("inventory/repository/sqlite: db is required")
	}
	return &implRepository{
		db:   db,
		l:    l,
		exec: query.NewExecutor(db),
		reg:  newRegistry(),
	}
}

// Open opens the database at path and ensures the schema exists.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/sqlite.%s", method)
}

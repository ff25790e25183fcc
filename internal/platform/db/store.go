// Package db owns the record store handle shared by the repositories: the
// connection pool, the SQL dialect, the placeholder-aware statement builder,
// and the per-operation transaction scope.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect names a supported storage engine.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Store is the explicitly passed handle over the relational table store.
type Store struct {
	db      *sql.DB
	dialect Dialect
	builder sq.StatementBuilderType
	release func()
}

// NewStore wraps an open *sql.DB speaking the given dialect.
func NewStore(db *sql.DB, dialect Dialect) *Store {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}
	return &Store{
		db:      db,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

// Open connects to the configured backend.
func Open(ctx context.Context, driver, sqlitePath, pgDSN string) (*Store, error) {
	switch Dialect(driver) {
	case DialectSQLite:
		return OpenSQLite(ctx, sqlitePath)
	case DialectPostgres:
		return OpenPostgres(ctx, pgDSN)
	default:
		return nil, fmt.Errorf("platform/db: unsupported driver %q", driver)
	}
}

// DB exposes the underlying pool.
func (s *Store) DB() *sql.DB { return s.db }

// Dialect reports the storage engine behind the store.
func (s *Store) Dialect() Dialect { return s.dialect }

// Builder returns a statement builder using the dialect's placeholders.
func (s *Store) Builder() sq.StatementBuilderType { return s.builder }

// Ping checks store connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("platform/db: ping: %w", err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() error {
	err := s.db.Close()
	if s.release != nil {
		s.release()
	}
	if err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("platform/db: close: %w", err)
	}
	return nil
}

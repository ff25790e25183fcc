package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// OpenSQLite opens (creating if needed) the SQLite file at path.
//
// The pool is pinned to one connection: SQLite serialises writers anyway, and
// an in-memory database only lives as long as its connection.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("platform/db: sqlite path is empty")
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("platform/db: open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if _, err := conn.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("platform/db: sqlite pragma: %w", err)
	}

	store := NewStore(conn, DialectSQLite)
	if err := store.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return store, nil
}

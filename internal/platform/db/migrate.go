package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// Migrate creates the users and addresses tables when they are absent.
func Migrate(ctx context.Context, store *Store) error {
	dialect := goose.DialectSQLite3
	dir := "migrations/sqlite"
	if store.Dialect() == DialectPostgres {
		dialect = goose.DialectPostgres
		dir = "migrations/postgres"
	}

	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return fmt.Errorf("platform/db: migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(dialect, store.DB(), fsys)
	if err != nil {
		return fmt.Errorf("platform/db: goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("platform/db: goose up: %w", err)
	}
	return nil
}

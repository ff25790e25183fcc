// Package dbtest opens migrated in-memory stores for package tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liviaspereira/HomeCleanup-API/internal/platform/db"
)

// NewStore returns a fresh SQLite store with the schema applied. The store is
// closed when the test finishes.
func NewStore(t testing.TB) *db.Store {
	t.Helper()
	ctx := context.Background()

	store, err := db.OpenSQLite(ctx, db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, db.Migrate(ctx, store))
	return store
}

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/liviaspereira/HomeCleanup-API/internal/shared"
)

// ClassifyError maps driver errors onto the shared taxonomy: missing rows
// become shared.ErrNotFound, everything else wraps shared.ErrStore.
func ClassifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, shared.ErrNotFound) {
		return shared.ErrNotFound
	}
	if IsConstraintViolation(err) {
		return fmt.Errorf("%w: %s: constraint violation: %v", shared.ErrStore, op, err)
	}
	return fmt.Errorf("%w: %s: %v", shared.ErrStore, op, err)
}

// IsConstraintViolation reports whether err is an integrity constraint failure
// (PostgreSQL class 23, SQLite SQLITE_CONSTRAINT).
func IsConstraintViolation(err error) bool {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return len(pge.Code) == 5 && pge.Code[:2] == "23"
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

package addresses

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/liviaspereira/HomeCleanup-API/internal/platform/db"
	"github.com/liviaspereira/HomeCleanup-API/internal/shared"
)

const table = "addresses"

var columns = []string{
	"id", "street_name", "street_number", "city", "postal_code", "country",
	"size", "number_of_rooms", "user_id", "created_at", "is_active",
}

// Repository persists addresses in the record store.
type Repository struct {
	store *db.Store
}

// NewRepository constructs a repository.
func NewRepository(store *db.Store) *Repository {
	return &Repository{store: store}
}

// Insert stores a and returns the assigned identifier.
func (r *Repository) Insert(ctx context.Context, a Address) (int64, error) {
	query, args, err := r.store.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(a.StreetName, a.StreetNumber, a.City, a.PostalCode, a.Country,
			a.Size, a.NumberOfRooms, a.UserID, a.CreatedAt, a.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("addresses: build insert: %w", err)
	}

	var id int64
	err = r.store.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return 0, db.ClassifyError("addresses: insert", err)
	}
	return id, nil
}

// Get returns the address with id, or shared.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int64) (Address, error) {
	query, args, err := r.store.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return Address{}, fmt.Errorf("addresses: build select: %w", err)
	}

	var a Address
	err = r.store.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(
			&a.ID, &a.StreetName, &a.StreetNumber, &a.City, &a.PostalCode, &a.Country,
			&a.Size, &a.NumberOfRooms, &a.UserID, &a.CreatedAt, &a.IsActive,
		)
	})
	if err != nil {
		return Address{}, db.ClassifyError("addresses: get", err)
	}
	return a, nil
}

// Delete removes the row permanently; shared.ErrNotFound when no row matched.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.store.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("addresses: build delete: %w", err)
	}

	err = r.store.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	return db.ClassifyError("addresses: delete", err)
}

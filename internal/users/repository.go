package users

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/liviaspereira/HomeCleanup-API/internal/platform/db"
)

const table = "users"

var columns = []string{"id", "name", "email", "phone", "hashed_password", "is_home_owner", "created_at", "is_active"}

// Repository persists users in the record store.
type Repository struct {
	store *db.Store
}

// NewRepository constructs a repository.
func NewRepository(store *db.Store) *Repository {
	return &Repository{store: store}
}

// Insert stores u and returns the assigned identifier.
func (r *Repository) Insert(ctx context.Context, u User) (int64, error) {
	query, args, err := r.store.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(u.Name, u.Email, u.Phone, u.HashedPassword, u.IsHomeOwner, u.CreatedAt, u.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("users: build insert: %w", err)
	}

	var id int64
	err = r.store.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return 0, db.ClassifyError("users: insert", err)
	}
	return id, nil
}

// Get returns the user with id, or shared.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int64) (User, error) {
	query, args, err := r.store.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return User{}, fmt.Errorf("users: build select: %w", err)
	}

	var u User
	err = r.store.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(
			&u.ID, &u.Name, &u.Email, &u.Phone, &u.HashedPassword, &u.IsHomeOwner, &u.CreatedAt, &u.IsActive,
		)
	})
	if err != nil {
		return User{}, db.ClassifyError("users: get", err)
	}
	return u, nil
}

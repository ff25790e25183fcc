package users

import (
	"context"
	"fmt"
	"time"

	"github.com/liviaspereira/HomeCleanup-API/internal/auth"
	"github.com/liviaspereira/HomeCleanup-API/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	Insert(ctx context.Context, u User) (int64, error)
	Get(ctx context.Context, id int64) (User, error)
}

// Service handles user business logic.
type Service struct {
	repo   RepositoryPort
	hasher auth.Hasher
	now    func() time.Time
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, hasher auth.Hasher) *Service {
	return &Service{repo: repo, hasher: hasher, now: defaultNow}
}

// WithClock overrides the creation timestamp source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Create hashes the password, stamps the creation time and stores the user.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	// max=72 counts runes; bcrypt limits bytes.
	if len(*req.Password) > auth.MaxSecretBytes {
		return User{}, shared.NewValidationError("password", "max",
			fmt.Sprintf("must be at most %d bytes", auth.MaxSecretBytes))
	}
	hashed, err := s.hasher.Hash(*req.Password)
	if err != nil {
		return User{}, err
	}
	user := User{
		Name:           *req.Name,
		Email:          *req.Email,
		Phone:          *req.Phone,
		HashedPassword: hashed,
		IsHomeOwner:    *req.IsHomeOwner,
		CreatedAt:      s.now(),
		IsActive:       true,
	}
	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.ID = id
	return user, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.repo.Get(ctx, id)
}

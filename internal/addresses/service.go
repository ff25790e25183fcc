package addresses

import (
	"context"
	"time"
)

// RepositoryPort defines data access methods for addresses.
type RepositoryPort interface {
	Insert(ctx context.Context, a Address) (int64, error)
	Get(ctx context.Context, id int64) (Address, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles address business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }}
}

// WithClock overrides the creation timestamp source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create stamps the creation time and stores the address.
func (s *Service) Create(ctx context.Context, req CreateAddressRequest) (Address, error) {
	a := Address{
		StreetName:    *req.StreetName,
		StreetNumber:  *req.StreetNumber,
		City:          *req.City,
		PostalCode:    *req.PostalCode,
		Country:       *req.Country,
		Size:          *req.Size,
		NumberOfRooms: *req.NumberOfRooms,
		UserID:        *req.UserID,
		CreatedAt:     s.now(),
		IsActive:      true,
	}
	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		return Address{}, err
	}
	a.ID = id
	return a, nil
}

// Get returns an address by id.
func (s *Service) Get(ctx context.Context, id int64) (Address, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes an address permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/ventara/stayhub/internal/clock"
	"github.com/ventara/stayhub/internal/domain"
)

// AdminRepository manages the collaborator records the booking engine
// references: users (guests and hosts) and places.
type AdminRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	CreatePlace(ctx context.Context, place domain.Place) error
	GetPlace(ctx context.Context, id string) (domain.Place, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	ListPlacesByHost(ctx context.Context, hostID string) ([]domain.Place, error)
}

type AdminService struct {
	repo  AdminRepository
	clock clock.Clock
}

func NewAdminService(repo AdminRepository, clk clock.Clock) *AdminService {
	return &AdminService{
		repo:  repo,
		clock: clk,
	}
}

type CreateUserInput struct {
	Name  string
	Email string
}

func (s *AdminService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	if in.Name == "" {
		return domain.User{}, domain.ErrUserNameRequired
	}
	if in.Email == "" {
		return domain.User{}, domain.ErrUserEmailRequired
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

type CreatePlaceInput struct {
	HostID       string
	Name         string
	NightlyPrice int64
	MaxGuests    int
}

func (s *AdminService) CreatePlace(ctx context.Context, in CreatePlaceInput) (domain.Place, error) {
	if in.HostID == "" {
		return domain.Place{}, domain.ErrHostRequired
	}
	if in.Name == "" {
		return domain.Place{}, domain.ErrPlaceNameRequired
	}
	if in.NightlyPrice <= 0 {
		return domain.Place{}, domain.ErrInvalidNightlyPrice
	}
	if in.MaxGuests <= 0 {
		return domain.Place{}, domain.ErrInvalidMaxGuests
	}

	place := domain.Place{
		ID:           uuid.NewString(),
		HostID:       in.HostID,
		Name:         in.Name,
		NightlyPrice: in.NightlyPrice,
		MaxGuests:    in.MaxGuests,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.CreatePlace(ctx, place); err != nil {
		return domain.Place{}, err
	}
	return place, nil
}

func (s *AdminService) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	if id == "" {
		return domain.Place{}, domain.ErrInvalidID
	}
	return s.repo.GetPlace(ctx, id)
}

func (s *AdminService) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	return s.repo.ListPlaces(ctx)
}

func (s *AdminService) ListPlacesByHost(ctx context.Context, hostID string) ([]domain.Place, error) {
	if hostID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListPlacesByHost(ctx, hostID)
}

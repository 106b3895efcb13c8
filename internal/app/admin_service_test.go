package app

import (
	"context"
	"testing"
	"time"

	"github.com/ventara/stayhub/internal/clock"
	"github.com/ventara/stayhub/internal/domain"
)

func TestAdminService_CreateUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates user", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAdminService(repo, clock.NewFixed(now))

		user, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "Ana", Email: "ana@example.com"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.ID == "" {
			t.Fatalf("expected user ID to be set")
		}
		if !user.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, user.CreatedAt)
		}
		if len(repo.users) != 1 {
			t.Fatalf("expected 1 user persisted, got %d", len(repo.users))
		}
	})

	t.Run("requires name and email", func(t *testing.T) {
		svc := NewAdminService(newFakeAdminRepo(), clock.NewFixed(now))

		if _, err := svc.CreateUser(context.Background(), CreateUserInput{Email: "ana@example.com"}); err != domain.ErrUserNameRequired {
			t.Fatalf("expected ErrUserNameRequired, got %v", err)
		}
		if _, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "Ana"}); err != domain.ErrUserEmailRequired {
			t.Fatalf("expected ErrUserEmailRequired, got %v", err)
		}
	})
}

func TestAdminService_CreatePlace(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates place", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAdminService(repo, clock.NewFixed(now))

		place, err := svc.CreatePlace(context.Background(), CreatePlaceInput{
			HostID:       "host-1",
			Name:         "Cabin by the lake",
			NightlyPrice: 150000,
			MaxGuests:    8,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if place.ID == "" {
			t.Fatalf("expected place ID to be set")
		}
		if len(repo.places) != 1 {
			t.Fatalf("expected 1 place persisted, got %d", len(repo.places))
		}
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewAdminService(newFakeAdminRepo(), clock.NewFixed(now))
		valid := CreatePlaceInput{HostID: "host-1", Name: "Cabin", NightlyPrice: 150000, MaxGuests: 8}

		tests := []struct {
			name    string
			mutate  func(*CreatePlaceInput)
			wantErr error
		}{
			{"missing host", func(in *CreatePlaceInput) { in.HostID = "" }, domain.ErrHostRequired},
			{"missing name", func(in *CreatePlaceInput) { in.Name = "" }, domain.ErrPlaceNameRequired},
			{"zero price", func(in *CreatePlaceInput) { in.NightlyPrice = 0 }, domain.ErrInvalidNightlyPrice},
			{"negative price", func(in *CreatePlaceInput) { in.NightlyPrice = -5 }, domain.ErrInvalidNightlyPrice},
			{"zero capacity", func(in *CreatePlaceInput) { in.MaxGuests = 0 }, domain.ErrInvalidMaxGuests},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				in := valid
				tt.mutate(&in)
				if _, err := svc.CreatePlace(context.Background(), in); err != tt.wantErr {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			})
		}
	})
}

type fakeAdminRepo struct {
	users  map[string]domain.User
	places map[string]domain.Place
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		users:  make(map[string]domain.User),
		places: make(map[string]domain.Place),
	}
}

func (f *fakeAdminRepo) CreateUser(_ context.Context, user domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeAdminRepo) CreatePlace(_ context.Context, place domain.Place) error {
	f.places[place.ID] = place
	return nil
}

func (f *fakeAdminRepo) GetPlace(_ context.Context, id string) (domain.Place, error) {
	place, ok := f.places[id]
	if !ok {
		return domain.Place{}, domain.ErrPlaceNotFound
	}
	return place, nil
}

func (f *fakeAdminRepo) ListPlaces(_ context.Context) ([]domain.Place, error) {
	out := make([]domain.Place, 0, len(f.places))
	for _, p := range f.places {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeAdminRepo) ListPlacesByHost(_ context.Context, hostID string) ([]domain.Place, error) {
	var out []domain.Place
	for _, p := range f.places {
		if p.HostID == hostID {
			out = append(out, p)
		}
	}
	return out, nil
}

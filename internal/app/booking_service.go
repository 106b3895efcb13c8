package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ventara/stayhub/internal/clock"
	"github.com/ventara/stayhub/internal/domain"
	"github.com/ventara/stayhub/internal/observability/metrics"
	"github.com/ventara/stayhub/pkg/logging"
)

// ReservationRepository is the store surface the booking service needs.
// Mutating operations called inside WithTx share one transaction; the
// *ForUpdate reads take row locks so check-then-act sequences are
// serialized per place and per reservation.
type ReservationRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetPlaceForUpdate(ctx context.Context, placeID string) (domain.Place, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	ExistsActiveOverlap(ctx context.Context, placeID string, checkIn, checkOut time.Time) (bool, error)
	CreateReservation(ctx context.Context, res domain.Reservation) error
	GetReservation(ctx context.Context, id string) (domain.Reservation, error)
	GetReservationForUpdate(ctx context.Context, id string) (domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	ListByGuest(ctx context.Context, guestID string) ([]domain.Reservation, error)
	ListByHost(ctx context.Context, hostID string) ([]domain.Reservation, error)
	ListByPlace(ctx context.Context, placeID string) ([]domain.Reservation, error)
	FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error)
}

const (
	defaultCancellationWindow = 48 * time.Hour
	defaultPendingTTL         = 24 * time.Hour
)

type BookingService struct {
	repo    ReservationRepository
	clock   clock.Clock
	logger  *logging.Logger
	metrics *metrics.BookingMetrics
	window  time.Duration
	ttl     time.Duration
}

func NewBookingService(repo ReservationRepository, clk clock.Clock, opts ...BookingServiceOption) *BookingService {
	svc := &BookingService{
		repo:   repo,
		clock:  clk,
		logger: logging.Default(),
		window: defaultCancellationWindow,
		ttl:    defaultPendingTTL,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type BookingServiceOption func(*BookingService)

// WithCancellationWindow overrides the minimum lead time for guest
// cancellations.
func WithCancellationWindow(d time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if d > 0 {
			s.window = d
		}
	}
}

// WithPendingTTL overrides how long a pending reservation may wait for
// a host decision before the sweep expires it.
func WithPendingTTL(d time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if d > 0 {
			s.ttl = d
		}
	}
}

func WithLogger(logger *logging.Logger) BookingServiceOption {
	return func(s *BookingService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.BookingMetrics) BookingServiceOption {
	return func(s *BookingService) {
		s.metrics = m
	}
}

type CreateReservationInput struct {
	PlaceID    string
	GuestID    string
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
}

func (in CreateReservationInput) validate(now time.Time) error {
	if in.PlaceID == "" {
		return domain.ErrPlaceRequired
	}
	if in.GuestID == "" {
		return domain.ErrGuestRequired
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return domain.ErrDatesRequired
	}
	if !in.CheckIn.After(now) {
		return domain.ErrCheckInNotFuture
	}
	if !in.CheckOut.After(in.CheckIn) {
		return domain.ErrCheckOutNotAfter
	}
	if in.GuestCount <= 0 {
		return domain.ErrInvalidGuestCount
	}
	return nil
}

// CreateReservation validates the request, checks availability and
// persists a pending reservation with its price fixed. The place row
// is locked for the duration of the transaction so two overlapping
// requests cannot both pass the availability check.
func (s *BookingService) CreateReservation(ctx context.Context, in CreateReservationInput) (domain.Reservation, error) {
	now := s.clock.Now()
	if err := in.validate(now); err != nil {
		s.metrics.ObserveCreated("invalid")
		return domain.Reservation{}, err
	}

	var result domain.Reservation
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		place, err := s.repo.GetPlaceForUpdate(txCtx, in.PlaceID)
		if err != nil {
			return err
		}

		exists, err := s.repo.UserExists(txCtx, in.GuestID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrUserNotFound
		}

		if in.GuestCount > place.MaxGuests {
			return domain.ErrCapacityExceeded
		}

		overlap, err := s.repo.ExistsActiveOverlap(txCtx, in.PlaceID, in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}
		if overlap {
			return domain.ErrDateConflict
		}

		res := domain.Reservation{
			ID:         uuid.NewString(),
			PlaceID:    in.PlaceID,
			GuestID:    in.GuestID,
			CheckIn:    in.CheckIn,
			CheckOut:   in.CheckOut,
			GuestCount: in.GuestCount,
			Price:      CalculatePrice(place, in.CheckIn, in.CheckOut, in.GuestCount),
			Status:     domain.StatusPending,
			CreatedAt:  now,
		}

		if err := s.repo.CreateReservation(txCtx, res); err != nil {
			return err
		}

		result = res
		return nil
	})
	if err != nil {
		switch err {
		case domain.ErrDateConflict:
			s.metrics.ObserveCreated("conflict")
		case domain.ErrCapacityExceeded, domain.ErrUserNotFound, domain.ErrPlaceNotFound:
			s.metrics.ObserveCreated("invalid")
		}
		return domain.Reservation{}, err
	}

	s.metrics.ObserveCreated("created")
	return result, nil
}

// IsAvailable reports whether no active reservation on the place
// overlaps the requested window. Read-only; callers that go on to book
// must rely on CreateReservation's own locked check.
func (s *BookingService) IsAvailable(ctx context.Context, placeID string, checkIn, checkOut time.Time) (bool, error) {
	if placeID == "" {
		return false, domain.ErrPlaceRequired
	}
	overlap, err := s.repo.ExistsActiveOverlap(ctx, placeID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

func (s *BookingService) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	if id == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}
	return s.repo.GetReservation(ctx, id)
}

func (s *BookingService) ListByGuest(ctx context.Context, guestID string) ([]domain.Reservation, error) {
	if guestID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListByGuest(ctx, guestID)
}

func (s *BookingService) ListByHost(ctx context.Context, hostID string) ([]domain.Reservation, error) {
	if hostID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListByHost(ctx, hostID)
}

func (s *BookingService) ListByPlace(ctx context.Context, placeID string) ([]domain.Reservation, error) {
	if placeID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListByPlace(ctx, placeID)
}

// UpdateStatus applies one transition of the status machine. Terminal
// statuses reject every transition, including re-entering themselves.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, next domain.ReservationStatus) (domain.Reservation, error) {
	if id == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}
	if _, ok := domain.ParseStatus(string(next)); !ok {
		return domain.Reservation{}, domain.ErrInvalidStatus
	}

	var result domain.Reservation
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		res, err := s.repo.GetReservationForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !res.Status.CanTransitionTo(next) {
			return domain.ErrInvalidTransition
		}
		if err := s.repo.UpdateReservationStatus(txCtx, id, next); err != nil {
			return err
		}
		res.Status = next
		result = res
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return result, nil
}

// CancelReservation is the guest-initiated cancellation. It enforces
// the 48-hour policy window; the reason is logged for audit but not
// persisted.
func (s *BookingService) CancelReservation(ctx context.Context, id, reason string) (domain.Reservation, error) {
	if id == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}

	now := s.clock.Now()
	var result domain.Reservation
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		res, err := s.repo.GetReservationForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !res.Status.CanTransitionTo(domain.StatusCancelled) {
			return domain.ErrInvalidTransition
		}
		if res.CheckIn.Sub(now) < s.window {
			return domain.ErrCancellationWindow
		}
		if err := s.repo.UpdateReservationStatus(txCtx, id, domain.StatusCancelled); err != nil {
			return err
		}
		res.Status = domain.StatusCancelled
		result = res
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	s.metrics.ObserveCancelled()
	s.logger.Info("reservation cancelled",
		"reservation_id", result.ID,
		"place_id", result.PlaceID,
		"guest_id", result.GuestID,
		"reason", reason,
	)
	return result, nil
}

// ExpirePendingReservations cancels pending reservations whose hosts
// never answered within the TTL. Each record is transitioned in its
// own transaction; a failure is logged and the sweep moves on, so a
// partial sweep still leaves processed records expired. Running it
// again once the backlog is drained expires nothing.
func (s *BookingService) ExpirePendingReservations(ctx context.Context) (int, error) {
	cutoff := s.clock.Now().Add(-s.ttl)
	stale, err := s.repo.FindPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, res := range stale {
		transitioned := false
		err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
			cur, err := s.repo.GetReservationForUpdate(txCtx, res.ID)
			if err != nil {
				return err
			}
			// A foreground request may have moved it since the query.
			if cur.Status != domain.StatusPending {
				return nil
			}
			if err := s.repo.UpdateReservationStatus(txCtx, res.ID, domain.StatusCancelled); err != nil {
				return err
			}
			transitioned = true
			return nil
		})
		if err != nil {
			s.logger.Error("expire reservation",
				"reservation_id", res.ID,
				"error", err,
			)
			continue
		}
		if transitioned {
			expired++
		}
	}

	s.metrics.ObserveExpired(expired)
	return expired, nil
}

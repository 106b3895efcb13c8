package app

import (
	"context"
	"time"

	"github.com/ventara/stayhub/internal/domain"
)

// HostMetricsRepository aggregates reservations per host. Host scoping
// goes through place ownership; the repository joins on the place's
// host_id.
type HostMetricsRepository interface {
	CountByHostAndStatus(ctx context.Context, hostID string, status domain.ReservationStatus) (int64, error)
}

// ReviewRepository is the sibling review store, read-only here.
type ReviewRepository interface {
	AverageRatingByHostAndRange(ctx context.Context, hostID string, from, to time.Time) (float64, error)
}

// HostMetricsService serves the host dashboard reads. Pure
// aggregations, no lifecycle rules.
type HostMetricsService struct {
	reservations HostMetricsRepository
	reviews      ReviewRepository
}

func NewHostMetricsService(reservations HostMetricsRepository, reviews ReviewRepository) *HostMetricsService {
	return &HostMetricsService{
		reservations: reservations,
		reviews:      reviews,
	}
}

func (s *HostMetricsService) CountByHostAndStatus(ctx context.Context, hostID string, status domain.ReservationStatus) (int64, error) {
	if hostID == "" {
		return 0, domain.ErrInvalidID
	}
	if _, ok := domain.ParseStatus(string(status)); !ok {
		return 0, domain.ErrInvalidStatus
	}
	return s.reservations.CountByHostAndStatus(ctx, hostID, status)
}

// AverageRatingByHostAndDateRange returns the mean review rating for
// the host's places over [from, to]; 0 when no reviews match.
func (s *HostMetricsService) AverageRatingByHostAndDateRange(ctx context.Context, hostID string, from, to time.Time) (float64, error) {
	if hostID == "" {
		return 0, domain.ErrInvalidID
	}
	if !to.After(from) {
		return 0, domain.ErrInvalidMetricsRange
	}
	return s.reviews.AverageRatingByHostAndRange(ctx, hostID, from, to)
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/ventara/stayhub/internal/domain"
)

func TestHostMetricsService(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	svc := NewHostMetricsService(
		&fakeHostMetricsRepo{counts: map[string]int64{"host-1|confirmed": 3}},
		&fakeReviewRepo{avg: 4.5},
	)

	t.Run("count by host and status", func(t *testing.T) {
		count, err := svc.CountByHostAndStatus(context.Background(), "host-1", domain.StatusConfirmed)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 3 {
			t.Fatalf("expected 3, got %d", count)
		}
	})

	t.Run("count requires a known status", func(t *testing.T) {
		if _, err := svc.CountByHostAndStatus(context.Background(), "host-1", "archived"); err != domain.ErrInvalidStatus {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("count requires host", func(t *testing.T) {
		if _, err := svc.CountByHostAndStatus(context.Background(), "", domain.StatusPending); err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("average rating", func(t *testing.T) {
		avg, err := svc.AverageRatingByHostAndDateRange(context.Background(), "host-1", from, to)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if avg != 4.5 {
			t.Fatalf("expected 4.5, got %f", avg)
		}
	})

	t.Run("average rating rejects inverted range", func(t *testing.T) {
		if _, err := svc.AverageRatingByHostAndDateRange(context.Background(), "host-1", to, from); err != domain.ErrInvalidMetricsRange {
			t.Fatalf("expected ErrInvalidMetricsRange, got %v", err)
		}
	})
}

type fakeHostMetricsRepo struct {
	counts map[string]int64
}

func (f *fakeHostMetricsRepo) CountByHostAndStatus(_ context.Context, hostID string, status domain.ReservationStatus) (int64, error) {
	return f.counts[hostID+"|"+string(status)], nil
}

type fakeReviewRepo struct {
	avg float64
}

func (f *fakeReviewRepo) AverageRatingByHostAndRange(_ context.Context, _ string, _, _ time.Time) (float64, error) {
	return f.avg, nil
}

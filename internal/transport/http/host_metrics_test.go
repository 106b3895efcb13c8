package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ventara/stayhub/internal/domain"
)

func TestHandleHostMetrics(t *testing.T) {
	t.Parallel()

	t.Run("count only", func(t *testing.T) {
		svc := &stubHostMetricsService{count: 7}
		router := newTestRouter(nil, svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/hosts/host-1/metrics?status=confirmed", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"count":7`) {
			t.Fatalf("expected count in body, got %q", body)
		}
		if strings.Contains(body, "average_rating") {
			t.Fatalf("expected no rating without a range, got %q", body)
		}
		if svc.lastStatus != domain.StatusConfirmed {
			t.Fatalf("expected confirmed passed through, got %q", svc.lastStatus)
		}
	})

	t.Run("count with rating range", func(t *testing.T) {
		svc := &stubHostMetricsService{count: 2, avg: 4.25}
		router := newTestRouter(nil, svc, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/hosts/host-1/metrics?status=completed&from=2025-01-01T00:00:00Z&to=2025-06-01T00:00:00Z", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"average_rating":4.25`) {
			t.Fatalf("expected rating in body, got %q", rec.Body.String())
		}
		if !svc.lastFrom.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected from passed through, got %v", svc.lastFrom)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		router := newTestRouter(nil, &stubHostMetricsService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/hosts/host-1/metrics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("malformed range", func(t *testing.T) {
		router := newTestRouter(nil, &stubHostMetricsService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/hosts/host-1/metrics?status=pending&from=yesterday&to=2025-06-01T00:00:00Z", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		svc := &stubHostMetricsService{avgErr: domain.ErrInvalidMetricsRange}
		router := newTestRouter(nil, svc, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/hosts/host-1/metrics?status=pending&from=2025-06-01T00:00:00Z&to=2025-01-01T00:00:00Z", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

type stubHostMetricsService struct {
	count      int64
	avg        float64
	avgErr     error
	lastStatus domain.ReservationStatus
	lastFrom   time.Time
	lastTo     time.Time
}

func (s *stubHostMetricsService) CountByHostAndStatus(_ context.Context, _ string, status domain.ReservationStatus) (int64, error) {
	s.lastStatus = status
	return s.count, nil
}

func (s *stubHostMetricsService) AverageRatingByHostAndDateRange(_ context.Context, _ string, from, to time.Time) (float64, error) {
	s.lastFrom = from
	s.lastTo = to
	if s.avgErr != nil {
		return 0, s.avgErr
	}
	return s.avg, nil
}

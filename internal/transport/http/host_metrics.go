package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ventara/stayhub/internal/domain"
)

// HostMetricsService serves the host dashboard aggregations.
type HostMetricsService interface {
	CountByHostAndStatus(ctx context.Context, hostID string, status domain.ReservationStatus) (int64, error)
	AverageRatingByHostAndDateRange(ctx context.Context, hostID string, from, to time.Time) (float64, error)
}

type hostMetricsResponse struct {
	HostID        string   `json:"host_id"`
	Status        string   `json:"status"`
	Count         int64    `json:"count"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}

// HandleHostMetrics returns the GET /hosts/{hostID}/metrics handler.
// Query params: status (required), from/to (RFC 3339, optional pair
// enabling the average-rating aggregation).
func HandleHostMetrics(svc HostMetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hostID := chi.URLParam(r, "hostID")

		status, ok := domain.ParseStatus(r.URL.Query().Get("status"))
		if !ok {
			respondError(w, domain.ErrInvalidStatus)
			return
		}

		count, err := svc.CountByHostAndStatus(r.Context(), hostID, status)
		if err != nil {
			respondError(w, err)
			return
		}

		resp := hostMetricsResponse{
			HostID: hostID,
			Status: string(status),
			Count:  count,
		}

		fromRaw := r.URL.Query().Get("from")
		toRaw := r.URL.Query().Get("to")
		if fromRaw != "" || toRaw != "" {
			from, err := time.Parse(time.RFC3339, fromRaw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidArgument, "invalid from timestamp")
				return
			}
			to, err := time.Parse(time.RFC3339, toRaw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidArgument, "invalid to timestamp")
				return
			}
			avg, err := svc.AverageRatingByHostAndDateRange(r.Context(), hostID, from, to)
			if err != nil {
				respondError(w, err)
				return
			}
			resp.AverageRating = &avg
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

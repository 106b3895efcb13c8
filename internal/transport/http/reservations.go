package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ventara/stayhub/internal/app"
	"github.com/ventara/stayhub/internal/domain"
)

// BookingService is the lifecycle surface the reservation handlers
// need.
type BookingService interface {
	CreateReservation(ctx context.Context, in app.CreateReservationInput) (domain.Reservation, error)
	GetReservation(ctx context.Context, id string) (domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, next domain.ReservationStatus) (domain.Reservation, error)
	CancelReservation(ctx context.Context, id, reason string) (domain.Reservation, error)
	ListByGuest(ctx context.Context, guestID string) ([]domain.Reservation, error)
	ListByHost(ctx context.Context, hostID string) ([]domain.Reservation, error)
}

type createReservationRequest struct {
	PlaceID    string    `json:"place_id"`
	GuestID    string    `json:"guest_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count"`
}

type reservationResponse struct {
	ID         string    `json:"id"`
	PlaceID    string    `json:"place_id"`
	GuestID    string    `json:"guest_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count"`
	Price      int64     `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func toReservationResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:         res.ID,
		PlaceID:    res.PlaceID,
		GuestID:    res.GuestID,
		CheckIn:    res.CheckIn,
		CheckOut:   res.CheckOut,
		GuestCount: res.GuestCount,
		Price:      res.Price,
		Status:     string(res.Status),
		CreatedAt:  res.CreatedAt,
	}
}

// HandleCreateReservation returns the POST /reservations handler.
func HandleCreateReservation(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReservationRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := svc.CreateReservation(r.Context(), app.CreateReservationInput{
			PlaceID:    req.PlaceID,
			GuestID:    req.GuestID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			GuestCount: req.GuestCount,
		})
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toReservationResponse(res))
	}
}

// HandleGetReservation returns the GET /reservations/{id} handler.
func HandleGetReservation(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.GetReservation(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReservationResponse(res))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

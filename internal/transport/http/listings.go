package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ventara/stayhub/internal/domain"
)

// HandleListByGuest returns the GET /guests/{guestID}/reservations
// handler.
func HandleListByGuest(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListByGuest(r.Context(), chi.URLParam(r, "guestID"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReservationList(list))
	}
}

// HandleListByHost returns the GET /hosts/{hostID}/reservations
// handler. Host scoping goes through place ownership.
func HandleListByHost(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListByHost(r.Context(), chi.URLParam(r, "hostID"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReservationList(list))
	}
}

func toReservationList(list []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(list))
	for _, res := range list {
		out = append(out, toReservationResponse(res))
	}
	return out
}

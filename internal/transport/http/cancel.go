package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type cancelReservationRequest struct {
	Reason string `json:"reason"`
}

// HandleCancelReservation returns the POST /reservations/{id}/cancel
// handler. The body is optional; the reason is audit-only.
func HandleCancelReservation(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cancelReservationRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := svc.CancelReservation(r.Context(), chi.URLParam(r, "id"), req.Reason)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReservationResponse(res))
	}
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ventara/stayhub/internal/domain"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus returns the POST /reservations/{id}/status
// handler. The body names the target status; the service enforces the
// transition rules.
func HandleUpdateStatus(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		status, ok := domain.ParseStatus(req.Status)
		if !ok {
			respondError(w, domain.ErrInvalidStatus)
			return
		}

		res, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReservationResponse(res))
	}
}

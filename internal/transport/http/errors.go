package http

import (
	"encoding/json"
	"net/http"

	"github.com/ventara/stayhub/internal/domain"
)

const (
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeInvalidArgument     = "invalid_argument"
	codeInvalidID           = "invalid_id"
	codePlaceNotFound       = "place_not_found"
	codeUserNotFound        = "user_not_found"
	codeReservationNotFound = "reservation_not_found"
	codeDateConflict        = "date_conflict"
	codeInvalidTransition   = "invalid_transition"
	codeCancellationWindow  = "cancellation_window"
	codeEmailInUse          = "email_already_in_use"
	codeForbidden           = "forbidden"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// respondError maps domain errors onto HTTP statuses; anything
// unrecognized is a 500.
func respondError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrPlaceRequired, domain.ErrGuestRequired, domain.ErrDatesRequired,
		domain.ErrCheckInNotFuture, domain.ErrCheckOutNotAfter, domain.ErrInvalidGuestCount,
		domain.ErrCapacityExceeded, domain.ErrInvalidStatus, domain.ErrInvalidMetricsRange,
		domain.ErrPlaceNameRequired, domain.ErrHostRequired, domain.ErrInvalidNightlyPrice,
		domain.ErrInvalidMaxGuests, domain.ErrUserNameRequired, domain.ErrUserEmailRequired:
		writeError(w, http.StatusBadRequest, codeInvalidArgument, err.Error())
	case domain.ErrInvalidID:
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case domain.ErrPlaceNotFound:
		writeError(w, http.StatusNotFound, codePlaceNotFound, err.Error())
	case domain.ErrUserNotFound:
		writeError(w, http.StatusNotFound, codeUserNotFound, err.Error())
	case domain.ErrReservationNotFound:
		writeError(w, http.StatusNotFound, codeReservationNotFound, err.Error())
	case domain.ErrDateConflict:
		writeError(w, http.StatusConflict, codeDateConflict, err.Error())
	case domain.ErrInvalidTransition:
		writeError(w, http.StatusConflict, codeInvalidTransition, err.Error())
	case domain.ErrEmailAlreadyInUse:
		writeError(w, http.StatusConflict, codeEmailInUse, err.Error())
	case domain.ErrCancellationWindow:
		writeError(w, http.StatusUnprocessableEntity, codeCancellationWindow, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

package domain

import "errors"

var (
	ErrPlaceRequired       = errors.New("place is required")
	ErrGuestRequired       = errors.New("guest is required")
	ErrDatesRequired       = errors.New("check-in and check-out are required")
	ErrCheckInNotFuture    = errors.New("check-in must be in the future")
	ErrCheckOutNotAfter    = errors.New("check-out must be after check-in")
	ErrInvalidGuestCount   = errors.New("guest count must be positive")
	ErrCapacityExceeded    = errors.New("guest count exceeds place capacity")
	ErrPlaceNotFound       = errors.New("place not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrDateConflict        = errors.New("place already reserved for the requested dates")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidTransition   = errors.New("status transition not permitted")
	ErrCancellationWindow  = errors.New("cannot cancel inside the 48-hour window")
	ErrInvalidID           = errors.New("invalid id")

	ErrPlaceNameRequired   = errors.New("place name required")
	ErrHostRequired        = errors.New("host is required")
	ErrInvalidNightlyPrice = errors.New("nightly price must be positive")
	ErrInvalidMaxGuests    = errors.New("max guests must be positive")
	ErrUserNameRequired    = errors.New("user name required")
	ErrUserEmailRequired   = errors.New("user email required")
	ErrEmailAlreadyInUse   = errors.New("email already in use")
	ErrInvalidMetricsRange = errors.New("metrics range end must be after start")
)

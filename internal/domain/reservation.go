package domain

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusRejected  ReservationStatus = "rejected"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ParseStatus maps a wire value to a known status.
func ParseStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCompleted, StatusCancelled:
		return ReservationStatus(s), true
	}
	return "", false
}

var allowedTransitions = map[ReservationStatus]map[ReservationStatus]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusRejected:  true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCompleted: true,
		StatusCancelled: true,
	},
}

// CanTransitionTo reports whether the status machine permits moving to next.
// Rejected, completed and cancelled are terminal.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	return allowedTransitions[s][next]
}

// Terminal reports whether no further transition is permitted.
func (s ReservationStatus) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Active statuses count toward availability conflicts.
func (s ReservationStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Reservation is a guest's stay at a place over a date range. Place and
// guest are referenced by ID only; the engine never mutates them. Price
// is fixed at creation in minor currency units.
type Reservation struct {
	ID         string
	PlaceID    string
	GuestID    string
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	Price      int64
	Status     ReservationStatus
	CreatedAt  time.Time
}

// Overlaps reports whether two half-open [checkIn, checkOut) intervals
// share any instant. A check-in equal to an existing check-out does not
// conflict, so back-to-back stays on the same place are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

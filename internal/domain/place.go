package domain

import "time"

// Place is a bookable property owned by a host. The booking engine
// reads it for pricing and capacity checks but never mutates it.
// NightlyPrice is in minor currency units.
type Place struct {
	ID           string
	HostID       string
	Name         string
	NightlyPrice int64
	MaxGuests    int
	CreatedAt    time.Time
}

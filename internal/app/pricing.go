package app

import (
	"time"

	"github.com/ventara/stayhub/internal/domain"
)

// CalculatePrice returns the total charge for a stay in minor currency
// units. Nights are whole 24-hour periods between check-in and
// check-out with a floor of one night, so a degenerate range still
// bills a single night. guests does not affect the base price; it is
// part of the signature so per-guest surcharges can be added without
// changing callers.
func CalculatePrice(place domain.Place, checkIn, checkOut time.Time, guests int) int64 {
	nights := int64(checkOut.Sub(checkIn) / (24 * time.Hour))
	if nights < 1 {
		nights = 1
	}
	return place.NightlyPrice * nights
}

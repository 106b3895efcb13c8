package app

import (
	"testing"
	"time"

	"github.com/ventara/stayhub/internal/domain"
)

func TestCalculatePrice(t *testing.T) {
	t.Parallel()

	place := domain.Place{NightlyPrice: 150000, MaxGuests: 8}
	base := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	t.Run("two nights", func(t *testing.T) {
		got := CalculatePrice(place, base, base.AddDate(0, 0, 2), 4)
		if got != 300000 {
			t.Fatalf("expected 300000, got %d", got)
		}
	})

	t.Run("floor of one night for sub-day stay", func(t *testing.T) {
		got := CalculatePrice(place, base, base.Add(6*time.Hour), 2)
		if got != 150000 {
			t.Fatalf("expected one night's price, got %d", got)
		}
	})

	t.Run("never less than one night even for inverted range", func(t *testing.T) {
		got := CalculatePrice(place, base, base.AddDate(0, 0, -3), 2)
		if got != 150000 {
			t.Fatalf("expected one night's price, got %d", got)
		}
	})

	t.Run("guest count does not affect price", func(t *testing.T) {
		one := CalculatePrice(place, base, base.AddDate(0, 0, 3), 1)
		eight := CalculatePrice(place, base, base.AddDate(0, 0, 3), 8)
		if one != eight {
			t.Fatalf("expected identical price, got %d vs %d", one, eight)
		}
	})

	t.Run("monotonic in nights", func(t *testing.T) {
		prev := int64(0)
		for nights := 1; nights <= 14; nights++ {
			got := CalculatePrice(place, base, base.AddDate(0, 0, nights), 2)
			if got <= prev {
				t.Fatalf("expected price to grow with nights, got %d after %d", got, prev)
			}
			prev = got
		}
	})
}

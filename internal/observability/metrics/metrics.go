package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the reservation lifecycle.
type BookingMetrics struct {
	createdTotal   *prometheus.CounterVec
	cancelledTotal prometheus.Counter
	expiredTotal   prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		createdTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stayhub",
			Subsystem: "bookings",
			Name:      "created_total",
			Help:      "Reservation creation attempts by result",
		}, []string{"result"}),
		cancelledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stayhub",
			Subsystem: "bookings",
			Name:      "cancelled_total",
			Help:      "Guest-initiated cancellations",
		}),
		expiredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stayhub",
			Subsystem: "bookings",
			Name:      "expired_total",
			Help:      "Stale pending reservations expired by the sweep",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.createdTotal, m.cancelledTotal, m.expiredTotal)
	return m
}

// ObserveCreated records a creation attempt; result is one of
// "created", "conflict" or "invalid".
func (m *BookingMetrics) ObserveCreated(result string) {
	if m == nil {
		return
	}
	m.createdTotal.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) ObserveCancelled() {
	if m == nil {
		return
	}
	m.cancelledTotal.Inc()
}

func (m *BookingMetrics) ObserveExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.expiredTotal.Add(float64(n))
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ventara/stayhub/pkg/logging"
)

// RouterConfig carries the services and ambient pieces the router
// wires together.
type RouterConfig struct {
	Bookings    BookingService
	HostMetrics HostMetricsService
	Admin       AdminService
	Logger      *logging.Logger
	CORSOrigins []string
	Gatherer    prometheus.Gatherer
}

// NewRouter assembles the HTTP surface of the booking engine.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", HealthHandler)
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", HandleCreateReservation(cfg.Bookings))
		r.Get("/{id}", HandleGetReservation(cfg.Bookings))
		r.Post("/{id}/status", HandleUpdateStatus(cfg.Bookings))
		r.Post("/{id}/cancel", HandleCancelReservation(cfg.Bookings))
	})

	r.Get("/guests/{guestID}/reservations", HandleListByGuest(cfg.Bookings))
	r.Get("/hosts/{hostID}/reservations", HandleListByHost(cfg.Bookings))
	r.Get("/hosts/{hostID}/metrics", HandleHostMetrics(cfg.HostMetrics))

	r.Route("/admin", func(r chi.Router) {
		r.Post("/users", HandleAdminCreateUser(cfg.Admin))
		r.Post("/places", HandleAdminCreatePlace(cfg.Admin))
		r.Get("/places", HandleAdminListPlaces(cfg.Admin))
	})

	r.NotFound(NotFoundHandler().ServeHTTP)

	return RequestLogger(CORS(cfg.CORSOrigins, r), cfg.Logger)
}

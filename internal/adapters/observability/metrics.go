package observability

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"hotel_rooms/internal/domain"
)

var (
	RoomsAdded = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "hotel", Name: "rooms_added_total", Help: "Rooms added to the registry."},
	)
	MenuActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "menu_actions_total", Help: "Completed menu actions."},
		[]string{"action"}, // action: add|list|average|exit
	)
	DomainErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "domain_errors_total", Help: "Domain errors surfaced to the user."},
		[]string{"kind"}, // kind: invalid_value|duplicate_room|empty_room_list|unexpected
	)
	LongRoomNumbers = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "hotel", Name: "long_room_numbers_total", Help: "Rooms accepted with an unusually long number."},
	)
)

// Serve exposes /metrics when METRICS_ADDR is set; with it unset (the
// default) the process opens no sockets at all.
func Serve(reg *prometheus.Registry) {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(RoomsAdded, MenuActions, DomainErrors, LongRoomNumbers)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveAction(action string) {
	MenuActions.WithLabelValues(action).Inc()
}

func ObserveError(err error) {
	DomainErrors.WithLabelValues(ErrKind(err)).Inc()
}

// ErrKind maps an error to its metrics label.
func ErrKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, domain.ErrDuplicateRoom):
		return "duplicate_room"
	case errors.Is(err, domain.ErrEmptyRoomList):
		return "empty_room_list"
	default:
		return "unexpected"
	}
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ambunet_dispatch", Name: "bookings_created_total", Help: "Bookings created",
	})
	BookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ambunet_dispatch", Name: "booking_transitions_total", Help: "Booking state transitions applied"},
		[]string{"to"},
	)
	BookingConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ambunet_dispatch", Name: "booking_conflicts_total", Help: "Rejected transitions by operation"},
		[]string{"op"},
	)
	NearestQueries = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ambunet_dispatch", Name: "nearest_query_seconds", Help: "Nearest-ambulance query latency",
	})
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ambunet_dispatch", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
)

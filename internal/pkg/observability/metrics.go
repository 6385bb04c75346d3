// Package observability exposes the engine's Prometheus metrics.
package observability

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "bookings_created_total",
		Help:      "Number of bookings created.",
	})

	BookingAccepts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "booking_accepts_total",
		Help:      "Accept attempts by outcome (accepted, already_taken, expired, not_found).",
	}, []string{"outcome"})

	RidesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "rides_completed_total",
		Help:      "Number of rides completed.",
	})

	RatingsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "ratings_recorded_total",
		Help:      "Number of ride ratings recorded.",
	})

	NegotiationsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "negotiations_opened_total",
		Help:      "Number of fare negotiations opened.",
	})

	NegotiationsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "negotiations_resolved_total",
		Help:      "Negotiations resolved by final status (accepted, declined, expired).",
	}, []string{"status"})

	MatchQueries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "match_queries_total",
		Help:      "Number of driver match queries served.",
	})

	FaresComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "fares_computed_total",
		Help:      "Number of fare quotes computed.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taxitao",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taxitao",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path string, status int, latency time.Duration) {
	httpRequests.WithLabelValues(method, path, statusClass(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(latency.Seconds())
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// RegisterMetricsEndpoint exposes the default registry on /metrics.
func RegisterMetricsEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

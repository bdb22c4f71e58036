package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "treasury",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Count of HTTP API requests.",
	}, []string{"method", "route", "code"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "treasury",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP API requests.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method", "route", "code"})
)

// API tracks metrics for HTTP gateway requests.
type API struct{}

// NewAPI creates an API metrics collector.
func NewAPI() *API {
	return &API{}
}

// Observe records one handled HTTP request.
func (m API) Observe(method, route string, code int, started time.Time) {
	if route == "" {
		route = "unknown"
	}

	apiRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	apiRequestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(time.Since(started).Seconds())
}

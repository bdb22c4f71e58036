package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditorRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "treasury",
		Subsystem: "auditor",
		Name:      "runs_total",
		Help:      "Count of conservation audit runs.",
	}, []string{"status"})
	auditorRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "treasury",
		Subsystem: "auditor",
		Name:      "run_duration_seconds",
		Help:      "Duration of conservation audit runs.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"status"})
	auditorViolationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "treasury",
		Subsystem: "auditor",
		Name:      "violations_total",
		Help:      "Count of schedules whose claimed, claimable and refund no longer sum to the total.",
	})
)

// Auditor tracks metrics for the conservation audit loop.
type Auditor struct{}

// NewAuditor creates an Auditor metrics collector.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// ObserveRun records one audit sweep.
func (m Auditor) ObserveRun(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	auditorRunsTotal.WithLabelValues(status).Inc()
	auditorRunDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveViolations records schedules failing the conservation check.
func (m Auditor) ObserveViolations(count int) {
	auditorViolationsTotal.Add(float64(count))
}

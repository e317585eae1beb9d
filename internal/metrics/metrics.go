// Package metrics holds the Prometheus instruments of the coaching service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels.
const (
	OpQuestion = "question"
	OpReport   = "report"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
)

// Metrics groups all collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	ReportBytes        prometheus.Histogram
	Sessions           prometheus.GaugeFunc
}

// New creates and registers the collectors with reg. sessionCount backs the sessions gauge.
func New(reg prometheus.Registerer, sessionCount func() int) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "interview_coach",
				Name:      "requests_total",
				Help:      "Coaching operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		GenerationDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "interview_coach",
				Name:      "generation_duration_seconds",
				Help:      "Latency of text generation calls",
				Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
			},
			[]string{"operation"},
		),
		ReportBytes: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "interview_coach",
				Name:      "report_size_bytes",
				Help:      "Size of rendered PDF reports",
				Buckets:   prometheus.ExponentialBuckets(1024, 2, 10),
			},
		),
		Sessions: promauto.With(reg).NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "interview_coach",
				Name:      "sessions",
				Help:      "Sessions held in memory",
			},
			func() float64 { return float64(sessionCount()) },
		),
	}
}

// Observe records one finished operation.
func (m *Metrics) Observe(operation, outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveGeneration records how long a model call took.
func (m *Metrics) ObserveGeneration(operation string, started time.Time) {
	if m == nil {
		return
	}
	m.GenerationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObserveReportSize records the size of a rendered report.
func (m *Metrics) ObserveReportSize(size int) {
	if m == nil {
		return
	}
	m.ReportBytes.Observe(float64(size))
}

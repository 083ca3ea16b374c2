// Package metrics exposes Prometheus instrumentation for the calculator and
// the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mortgage"

// Result sources for CalculationsTotal.
const (
	SourceComputed = "computed"
	SourceCache    = "cache"
	SourceScenario = "scenario"
)

// Metrics holds every collector on its own registry so that several
// instances (one per test, say) never collide.
type Metrics struct {
	Registry           *prometheus.Registry
	CalculationsTotal  *prometheus.CounterVec
	ValidationFailures prometheus.Counter
	CacheErrors        prometheus.Counter
	Duration           prometheus.Histogram
	RequestsTotal      *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CalculationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Mortgage calculations served, by result source.",
		}, []string{"source"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Calculation requests rejected by input validation.",
		}),
		CacheErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_errors_total",
			Help:      "Result cache reads or writes that failed.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent computing a full amortization schedule.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "HTTP requests handled, by route and status code.",
		}, []string{"route", "status"}),
	}

	m.Registry.MustRegister(
		m.CalculationsTotal,
		m.ValidationFailures,
		m.CacheErrors,
		m.Duration,
		m.RequestsTotal,
	)
	return m
}

// ObserveCalculation records one served calculation.
func (m *Metrics) ObserveCalculation(source string, elapsed time.Duration) {
	m.CalculationsTotal.WithLabelValues(source).Inc()
	if source == SourceComputed {
		m.Duration.Observe(elapsed.Seconds())
	}
}

// ObserveRequest records one HTTP response.
func (m *Metrics) ObserveRequest(route string, status int) {
	m.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Package metrics exposes Prometheus instrumentation for ledger operations
// and the HTTP surface.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

// Operation outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics groups the collectors registered for the service
type Metrics struct {
	gatherer        prometheus.Gatherer
	operations      *prometheus.CounterVec
	criticalSection *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
}

// New registers every collector on reg
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "operations_total",
			Help:      "Ledger operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		criticalSection: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ledger",
			Name:      "critical_section_seconds",
			Help:      "Time spent holding the ledger between load and save.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"operation", "mode"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
	}
}

// ObserveCriticalSection implements ledger.Observer
func (m *Metrics) ObserveCriticalSection(op, mode string, elapsed time.Duration, err error) {
	m.criticalSection.WithLabelValues(op, mode).Observe(elapsed.Seconds())
	m.operations.WithLabelValues(op, Outcome(err)).Inc()
}

// ObserveHTTPRequest counts one served request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Outcome classifies an operation result. Store and context failures are
// errors; every other failure is a business rejection.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ledger.ErrStoreUnavailable{}),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return OutcomeError
	default:
		return OutcomeRejected
	}
}

var _ ledger.Observer = (*Metrics)(nil)

// Package metrics exposes Prometheus collectors for the HTTP layer and the
// registration/booking flows. Collectors live on a private registry so tests
// can build isolated instances without tripping duplicate-registration panics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"turnos/config"
)

const defaultPrefix = "turnos"

// Outcome labels shared by the registration and context-switch counters.
const (
	OutcomeCompleted  = "completed"
	OutcomeRolledBack = "rolled_back"
	OutcomeFailed     = "failed"
	OutcomeOK         = "ok"
	OutcomeDenied     = "denied"
)

// Metrics holds the collectors the rest of the application records into.
// A disabled instance keeps every method as a no-op so callers never need
// to branch on configuration.
type Metrics struct {
	enabled  bool
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	registrationsTotal   *prometheus.CounterVec
	contextSwitchesTotal *prometheus.CounterVec
	appointmentsBooked   prometheus.Counter
	isolationChecksTotal *prometheus.CounterVec
}

// New builds the collector set. When cfg.Metrics is absent or disabled the
// returned instance records nothing and Handler responds 404.
func New(cfg *config.Config) *Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return &Metrics{}
	}

	prefix := cfg.Metrics.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		enabled:  true,
		registry: registry,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		registrationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_registrations_total",
				Help: "Unified registration attempts by outcome",
			},
			[]string{"outcome"},
		),
		contextSwitchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_context_switches_total",
				Help: "Business context switches by outcome",
			},
			[]string{"outcome"},
		),
		appointmentsBooked: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_appointments_booked_total",
				Help: "Total number of appointments booked",
			},
		),
		isolationChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_isolation_checks_total",
				Help: "Tenant isolation self-checks by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Enabled reports whether collectors were registered.
func (m *Metrics) Enabled() bool {
	return m.enabled
}

// Handler serves the scrape endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	if !m.enabled {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one served request. The path label uses the
// registered route pattern, not the raw URL, to keep cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if !m.enabled {
		return
	}

	code := strconv.Itoa(status)
	m.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// RecordRegistration counts one unified registration attempt.
func (m *Metrics) RecordRegistration(outcome string) {
	if !m.enabled {
		return
	}

	m.registrationsTotal.WithLabelValues(outcome).Inc()
}

// RecordContextSwitch counts one business context switch attempt.
func (m *Metrics) RecordContextSwitch(outcome string) {
	if !m.enabled {
		return
	}

	m.contextSwitchesTotal.WithLabelValues(outcome).Inc()
}

// RecordAppointmentBooked counts one confirmed booking.
func (m *Metrics) RecordAppointmentBooked() {
	if !m.enabled {
		return
	}

	m.appointmentsBooked.Inc()
}

// RecordIsolationCheck counts one tenant isolation self-check.
func (m *Metrics) RecordIsolationCheck(outcome string) {
	if !m.enabled {
		return
	}

	m.isolationChecksTotal.WithLabelValues(outcome).Inc()
}

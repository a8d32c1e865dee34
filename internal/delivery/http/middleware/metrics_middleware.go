package middleware

import (
	"time"

	"turnos/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records one observation per served request.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates the middleware around the collector set.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes method, route pattern, status and latency. The route
// pattern (c.Path) keeps the label cardinality bounded; raw URLs with ids
// in them never become label values.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler decide the status before observing.
			c.Error(err)
		}

		m.metrics.ObserveHTTPRequest(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))

		return nil
	}
}

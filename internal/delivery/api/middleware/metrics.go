package middleware

import (
	"strconv"
	"time"

	"estate/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the rest of the chain has run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = StatusCode(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		m.metrics.RecordRequest(c.Request().Method, route, strconv.Itoa(status), time.Since(start))

		return err
	}
}

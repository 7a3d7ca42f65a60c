package middleware

import (
	"log/slog"
	"math"
	"strconv"

	deliverycontext "estate/internal/delivery/context"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/infra/metrics"
	"estate/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// Rate limit headers set on every throttled route.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a rate limiting middleware. A nil limiter lets every request through.
func NewRateLimitMiddleware(limiter *ratelimit.Limiter, m *metrics.Metrics, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, metrics: m, logger: logger}
}

// Limit returns a middleware counting hits under scope for each client IP.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.limiter == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			res, err := m.limiter.Allow(ctx, scope+":"+c.RealIP())
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, allowing request",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return next(c)
			}

			resetSeconds := strconv.Itoa(int(math.Ceil(res.ResetAfter.Seconds())))
			header := c.Response().Header()
			header.Set(HeaderRateLimitLimit, strconv.Itoa(res.Limit))
			header.Set(HeaderRateLimitRemaining, strconv.Itoa(res.Remaining))
			header.Set(HeaderRateLimitReset, resetSeconds)

			if !res.Allowed {
				header.Set(echo.HeaderRetryAfter, resetSeconds)
				m.metrics.RecordRateLimitRejection(scope)

				return domainerrors.ErrTooManyRequests
			}

			return next(c)
		}
	}
}

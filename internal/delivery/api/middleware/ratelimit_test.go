package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"
	"estate/internal/infra/metrics"
	"estate/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingScripter struct {
	redis.Scripter

	counts map[string]int64
	err    error
}

func (s *countingScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return s.Eval(ctx, "", keys, args...)
}

func (s *countingScripter) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	if s.err != nil {
		return redis.NewCmdResult(nil, s.err)
	}
	s.counts[keys[0]]++
	windowMs, _ := args[0].(int64)

	return redis.NewCmdResult([]interface{}{s.counts[keys[0]], windowMs}, nil)
}

func hitLogin(t *testing.T, mw *RateLimitMiddleware) (*httptest.ResponseRecorder, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:5555"
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := mw.Limit("login")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	return rec, err
}

func TestRateLimit_RejectsAfterBudget(t *testing.T) {
	scripter := &countingScripter{counts: map[string]int64{}}
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	mw := NewRateLimitMiddleware(ratelimit.NewLimiter(scripter, 2, time.Minute), m, slog.New(slog.DiscardHandler))

	for range 2 {
		rec, err := hitLogin(t, mw)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec, err := hitLogin(t, mw)

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
	assert.Equal(t, http.StatusTooManyRequests, StatusCode(err))
	assert.Equal(t, "60", rec.Header().Get(echo.HeaderRetryAfter))
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, int64(3), scripter.counts["rl:login:203.0.113.9"])

	expected := `
# HELP estate_rate_limit_rejections_total Requests rejected by the rate limiter
# TYPE estate_rate_limit_rejections_total counter
estate_rate_limit_rejections_total{route="login"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "estate_rate_limit_rejections_total"))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	scripter := &countingScripter{counts: map[string]int64{}, err: errors.New("dial tcp: connection refused")}
	mw := NewRateLimitMiddleware(ratelimit.NewLimiter(scripter, 1, time.Minute), nil, slog.New(slog.DiscardHandler))

	for range 3 {
		rec, err := hitLogin(t, mw)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_DisabledLimiter(t *testing.T) {
	mw := NewRateLimitMiddleware(nil, nil, slog.New(slog.DiscardHandler))

	rec, err := hitLogin(t, mw)

	require.NoError(t, err)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

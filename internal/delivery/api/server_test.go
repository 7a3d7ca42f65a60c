package api

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"estate/config"
	apimiddleware "estate/internal/delivery/api/middleware"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// windowScripter counts hits per key the way the Redis window script does.
type windowScripter struct {
	redis.Scripter

	counts map[string]int64
}

func (s *windowScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return s.Eval(ctx, "", keys, args...)
}

func (s *windowScripter) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	s.counts[keys[0]]++
	windowMs, _ := args[0].(int64)

	return redis.NewCmdResult([]interface{}{s.counts[keys[0]], windowMs}, nil)
}

func newThrottledEcho(t *testing.T, trustedProxies []string, budget int) (*echo.Echo, *windowScripter) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.TrustedProxies = trustedProxies
	logger := slog.New(slog.DiscardHandler)

	e, err := newEcho(cfg, logger, nil, apimiddleware.NewErrorMiddleware(logger))
	require.NoError(t, err)

	scripter := &windowScripter{counts: map[string]int64{}}
	limiter := ratelimit.NewLimiter(scripter, budget, time.Minute)
	throttle := apimiddleware.NewRateLimitMiddleware(limiter, nil, logger)
	e.POST("/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, throttle.Limit("login"))

	return e, scripter
}

func postLogin(e *echo.Echo, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
		req.Header.Set(echo.HeaderXRealIP, forwardedFor)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func newTestEcho(logs *bytes.Buffer) *echo.Echo {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	e, err := newEcho(cfg, logger, nil, apimiddleware.NewErrorMiddleware(logger))
	if err != nil {
		panic(err)
	}

	return e
}

func TestNewEcho_UnknownRouteUsesEnvelope(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(&logs)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Not Found"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestNewEcho_PanicBecomesGenericError(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(&logs)
	e.GET("/boom", func(c echo.Context) error {
		panic("secret detail")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
	assert.Contains(t, logs.String(), "Recovered from panic")
	assert.Contains(t, logs.String(), "secret detail")
}

func TestNewEcho_BodyLimit(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(&logs)
	e.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewEcho_LoginThrottleIgnoresSpoofedForwardingHeaders(t *testing.T) {
	e, scripter := newThrottledEcho(t, nil, 1)

	statuses := make([]int, 0, 5)
	for i := range 5 {
		statuses = append(statuses, postLogin(e, "203.0.113.7:4000", "10.0.0."+strconv.Itoa(i)))
	}

	assert.Equal(t, []int{
		http.StatusOK,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, statuses)
	assert.Equal(t, map[string]int64{"rl:login:203.0.113.7": 5}, scripter.counts)
}

func TestNewEcho_TrustedProxyForwardsClientIP(t *testing.T) {
	e, scripter := newThrottledEcho(t, []string{"10.1.0.0/16"}, 1)

	assert.Equal(t, http.StatusOK, postLogin(e, "10.1.2.3:4000", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, postLogin(e, "10.1.2.3:4000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, postLogin(e, "10.1.2.3:4000", "198.51.100.2"))

	// Forwarding headers from peers outside the trusted range are ignored.
	assert.Equal(t, http.StatusOK, postLogin(e, "203.0.113.7:4000", "198.51.100.3"))
	assert.Equal(t, http.StatusTooManyRequests, postLogin(e, "203.0.113.7:4000", "198.51.100.4"))

	assert.Equal(t, int64(1), scripter.counts["rl:login:198.51.100.1"])
	assert.Equal(t, int64(2), scripter.counts["rl:login:198.51.100.2"])
	assert.Equal(t, int64(2), scripter.counts["rl:login:203.0.113.7"])
}

func TestNewEcho_InvalidTrustedProxy(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.TrustedProxies = []string{"not-a-cidr"}
	logger := slog.New(slog.DiscardHandler)

	e, err := newEcho(cfg, logger, nil, apimiddleware.NewErrorMiddleware(logger))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "http.trustedProxies")
	assert.Nil(t, e)
}

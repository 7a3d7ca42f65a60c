package ratelimit

import (
	"context"
	"time"

	"estate/config"
	"estate/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rl:"

// incrExpireScript increments the window counter, starts the window on the
// first hit and reports the remaining window in milliseconds.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// Result describes the state of a key's window after a hit.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// Limiter allows at most max hits per key within window.
type Limiter struct {
	client redis.Scripter
	max    int
	window time.Duration
}

// NewLimiter builds a limiter. It returns nil when client is nil or the
// budget is not positive, and a nil *Limiter allows everything.
func NewLimiter(client redis.Scripter, limit int, window time.Duration) *Limiter {
	if client == nil || limit <= 0 || window <= 0 {
		return nil
	}

	return &Limiter{client: client, max: limit, window: window}
}

// NewLoginLimiter builds the limiter guarding the login endpoint from configuration.
func NewLoginLimiter(cfg *config.Config, client *redis.Client) *Limiter {
	if client == nil || cfg.RateLimit == nil {
		return nil
	}

	return NewLimiter(client, cfg.RateLimit.Login.Max, cfg.RateLimit.Login.Window)
}

// Allow records a hit for key. On Redis errors the hit is allowed and the
// error is returned for logging.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	if l == nil {
		return Result{Allowed: true}, nil
	}

	res, err := incrExpireScript.Run(ctx, l.client, []string{keyPrefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{Allowed: true, Limit: l.max, Remaining: l.max}, errors.Wrap(err, "rate limit script failed")
	}
	if len(res) != 2 {
		return Result{Allowed: true, Limit: l.max, Remaining: l.max}, errors.Errorf("unexpected rate limit reply length %d", len(res))
	}

	count := int(res[0])
	resetAfter := l.window
	if res[1] > 0 {
		resetAfter = time.Duration(res[1]) * time.Millisecond
	}

	return Result{
		Allowed:    count <= l.max,
		Limit:      l.max,
		Remaining:  max(l.max-count, 0),
		ResetAfter: resetAfter,
	}, nil
}

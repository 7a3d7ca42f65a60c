// Package ratelimit implements fixed-window request budgets backed by Redis.
package ratelimit

import (
	"context"
	"log/slog"

	"estate/config"
	"estate/internal/domain/lifecycle"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams defines the dependencies of the Redis client.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient returns a Redis client, or nil when no address is configured.
// An unreachable server is logged and tolerated: the limiter fails open.
func NewClient(params ClientParams) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, rate limiting disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, rate limiting will fail open",
					slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"zerowaste/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 2 * time.Second

// RedisParams holds dependencies for the Redis client, injected by Fx
type RedisParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the shared Redis client, or nil when Redis is not configured
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, rate limiting falls back to in-process buckets")

		return nil, nil //nolint:nilnil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrapf(err, "ping redis %s", cfg.Addr)
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

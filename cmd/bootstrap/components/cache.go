package components

import (
	"context"
	"log/slog"

	"booth-reservation/internal/infra/cache"
	"booth-reservation/internal/pkg/config"
	"booth-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache falls back to no caching when Redis is disabled. An unreachable Redis only logs a warning:
// every read still goes to storage on a cache error.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.AvailabilityCache {
	if !cfg.Redis.Enabled {
		return shared.NoopAvailabilityCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis is not reachable, availability reads go to storage", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisAvailabilityCache(client, cfg.Redis.TTL)
}

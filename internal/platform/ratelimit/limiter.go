package ratelimit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const storePrefix = "costureira_limiter"

// NewLimiter builds the per-user request limiter. rate uses the formatted
// syntax of ulule/limiter ("120-M"). With an empty redisURL counters live in
// process memory; otherwise they are shared through redis so that every
// instance enforces the same budget. The returned close function releases the
// redis client and is never nil.
func NewLimiter(ctx context.Context, logger *slog.Logger, rate, redisURL string) (*limiter.Limiter, func() error, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	if redisURL == "" {
		logger.Info("Using in-memory rate limiter store", slog.String("rate", rate))
		store := memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: storePrefix})
		return limiter.New(store, parsed), func() error { return nil }, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: storePrefix})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}
	logger.Info("Using redis rate limiter store", slog.String("rate", rate))
	return limiter.New(store, parsed), client.Close, nil
}

// Package ratelimit builds the limiter guarding authentication.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

const storePrefix = "ledger_login_limiter"

// NewLoginLimiter creates a limiter for the given formatted rate ("5-M" is five per minute).
// Counters live in Redis when redisURL is set, so every instance shares them, and in process
// memory otherwise. The returned close function releases the Redis client.
func NewLoginLimiter(ctx context.Context, rateFormat, redisURL string) (*limiter.Limiter, func(), error) {
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid rate limit %q: %w", rateFormat, err)
	}

	if redisURL == "" {
		store := memorystore.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          storePrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
		return limiter.New(store, rate), func() {}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	store, err := redisstore.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: storePrefix, MaxRetry: 3})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	slog.Info("Login rate limit counters stored in redis")
	return limiter.New(store, rate), func() { _ = client.Close() }, nil
}

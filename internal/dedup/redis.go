package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ChartSentry/internal/model"
)

// Redis is a Deduper backed by a shared Redis instance, so multiple monitor
// processes scanning overlapping watchlists stay de-duplicated together.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis deduper and verifies connectivity.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{client: client, ttl: ttl}, nil
}

// FirstSeen claims the key atomically; SETNX loses the race exactly once per
// (symbol, signal, bar) within the TTL.
func (r *Redis) FirstSeen(ctx context.Context, symbol string, signal model.SignalType, barTime time.Time) (bool, error) {
	ok, err := r.client.SetNX(ctx, key(symbol, signal, barTime), 1, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error { return r.client.Close() }

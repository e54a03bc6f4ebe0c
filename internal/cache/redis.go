package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sportsbook-settlement/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

var _ repository.BalanceCache = (*RedisBalanceCache)(nil)

func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}

// RedisBalanceCache stores folded balances as decimal strings. Entries expire
// after ttl and are dropped on every ledger write for the user.
type RedisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisBalanceCache(c *redis.Client, ttl time.Duration) *RedisBalanceCache {
	return &RedisBalanceCache{client: c, ttl: ttl}
}

func key(userID string) string { return "balance:" + userID }

func (c *RedisBalanceCache) Get(ctx context.Context, userID string) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to read cached balance: %w", err)
	}

	balance, err := decimal.NewFromString(val)
	if err != nil {
		// corrupt entry, treat as a miss
		_ = c.client.Del(ctx, key(userID)).Err()
		return decimal.Zero, false, nil
	}
	return balance, true, nil
}

func (c *RedisBalanceCache) Set(ctx context.Context, userID string, balance decimal.Decimal) error {
	if err := c.client.Set(ctx, key(userID), balance.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache balance: %w", err)
	}
	return nil
}

func (c *RedisBalanceCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate balance: %w", err)
	}
	return nil
}

// NopBalanceCache never hits. Used when Redis is not configured.
type NopBalanceCache struct{}

func (NopBalanceCache) Get(context.Context, string) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}

func (NopBalanceCache) Set(context.Context, string, decimal.Decimal) error { return nil }

func (NopBalanceCache) Invalidate(context.Context, string) error { return nil }

// Package cache keeps booth availability in Redis for the read side.
package cache

import (
	"context"
	"time"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "booth:availability:"

	fieldAvailability = "availability"
	fieldVersion      = "version"
)

// putScript writes the entry unless the cached one already carries the same or a newer version.
// KEYS[1] entry, ARGV[1] version, ARGV[2] availability, ARGV[3] ttl in milliseconds.
var putScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and tonumber(current) >= tonumber(ARGV[1]) then
  return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'availability', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

type RedisAvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client redis.Cmdable, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

func Key(boothID uuid.UUID) string {
	return keyPrefix + boothID.String()
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, boothID uuid.UUID) (booth.Availability, bool, error) {
	val, err := c.client.HGet(ctx, Key(boothID), fieldAvailability).Result()
	if errs.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrap(err, "redis hget")
	}

	a, ok := booth.ParseAvailability(val)
	if !ok {
		// Treat garbage as a miss; the next Put overwrites it.
		return "", false, nil
	}
	return a, true, nil
}

func (c *RedisAvailabilityCache) Put(ctx context.Context, boothID uuid.UUID, a booth.Availability, version int64) error {
	err := putScript.Run(ctx, c.client, []string{Key(boothID)}, version, string(a), c.ttl.Milliseconds()).Err()
	if err != nil {
		return errs.Wrap(err, "redis put")
	}
	return nil
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, boothIDs ...uuid.UUID) error {
	if len(boothIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(boothIDs))
	for _, id := range boothIDs {
		keys = append(keys, Key(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}

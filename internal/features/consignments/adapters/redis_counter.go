package adapters

import (
	"context"
	"errors"
	"fmt"

	"courier-tracker/internal/features/consignments/domain"

	"github.com/redis/go-redis/v9"
)

const counterField = "currentNumber"

// allocateScript raises the counter to ARGV[1] when it is lower, then increments it.
// Both steps run inside one script so no other allocation can interleave.
var allocateScript = redis.NewScript(`
local current = tonumber(redis.call('HGET', KEYS[1], ARGV[2]) or '0')
local floor = tonumber(ARGV[1])
if floor > current then
  redis.call('HSET', KEYS[1], ARGV[2], ARGV[1])
end
return redis.call('HINCRBY', KEYS[1], ARGV[2], 1)
`)

// RedisCounter implements ports.CounterStore as a Redis hash.
type RedisCounter struct {
	client redis.UniversalClient
	key    string
}

// NewRedisCounter creates a counter stored under sequence:<key>.
func NewRedisCounter(client redis.UniversalClient, key string) (*RedisCounter, error) {
	if key == "" {
		return nil, domain.ErrInvalidKey
	}
	return &RedisCounter{
		client: client,
		key:    "sequence:" + key,
	}, nil
}

// Allocate runs the floor-raise and increment atomically.
func (c *RedisCounter) Allocate(ctx context.Context, floor int64) (int64, error) {
	next, err := allocateScript.Run(ctx, c.client, []string{c.key}, floor, counterField).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", c.key, err)
	}
	if next <= floor {
		return 0, fmt.Errorf("counter %s returned %d at floor %d", c.key, next, floor)
	}
	return next, nil
}

// Current reads the counter value.
func (c *RedisCounter) Current(ctx context.Context) (int64, error) {
	n, err := c.client.HGet(ctx, c.key, counterField).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	return n, nil
}

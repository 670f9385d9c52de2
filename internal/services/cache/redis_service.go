package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// RedisClient stores JSON values under "<namespace>:<key>" with a fixed TTL.
type RedisClient[T any] struct {
	client     *redis.Client
	namespace  string
	logger     zerolog.Logger
	expiration time.Duration
}

func NewRedisClient[T any](
	client *redis.Client,
	namespace string,
	logger zerolog.Logger,
	expiration time.Duration,
) *RedisClient[T] {
	logger = logger.With().
		Str("component", "RedisCache").
		Str("namespace", namespace).
		Logger()
	return &RedisClient[T]{client: client, namespace: namespace, logger: logger, expiration: expiration}
}

// Key returns the full Redis key used for key.
func (c *RedisClient[T]) Key(key string) string {
	if c.namespace == "" {
		return key
	}
	return c.namespace + ":" + key
}

func (c *RedisClient[T]) Set(ctx context.Context, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	fullKey := c.Key(key)
	if err := c.client.Set(ctx, fullKey, data, c.expiration).Err(); err != nil {
		c.logger.Warn().
			Ctx(ctx).
			Err(err).
			Str("key", fullKey).
			Msg("cache write failed")
		return err
	}

	c.logger.Debug().
		Ctx(ctx).
		Str("key", fullKey).
		Int("bytes", len(data)).
		Dur("ttl", c.expiration).
		Msg("cached value")
	return nil
}

//nolint:ireturn
func (c *RedisClient[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	fullKey := c.Key(key)

	data, err := c.client.Get(ctx, fullKey).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		c.logger.Debug().Ctx(ctx).Str("key", fullKey).Msg("cache miss")
		return zero, ErrMiss
	case err != nil:
		c.logger.Warn().Ctx(ctx).Err(err).Str("key", fullKey).Msg("cache read failed")
		return zero, err
	}

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("key", fullKey).
			Msg("dropping undecodable cache entry")
		if delErr := c.client.Del(ctx, fullKey).Err(); delErr != nil {
			c.logger.Warn().Ctx(ctx).Err(delErr).Str("key", fullKey).Msg("cache delete failed")
		}
		return zero, fmt.Errorf("unmarshal %s: %w", fullKey, err)
	}

	return result, nil
}

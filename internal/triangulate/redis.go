package triangulate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"macropilot.econdata.org/internal/logging"
)

// RedisCache stores observations in Redis so multiple instances share one
// triangulation cache. Failures degrade to cache misses; the fetcher then
// hits the upstream sources directly.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(addr string, ttl time.Duration, logger *slog.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    ttl,
		prefix: "macropilot:",
		logger: logger,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Observation, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.LogError(c.logger, "redis cache read failed", err, slog.String("key", key))
		}
		return nil, false
	}

	var obs Observation
	if err := json.Unmarshal(data, &obs); err != nil {
		logging.LogError(c.logger, "redis cache entry corrupt", err, slog.String("key", key))
		return nil, false
	}
	return &obs, true
}

func (c *RedisCache) Set(ctx context.Context, key string, obs *Observation) {
	data, err := json.Marshal(obs)
	if err != nil {
		logging.LogError(c.logger, "redis cache marshal failed", err, slog.String("key", key))
		return
	}

	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		logging.LogError(c.logger, "redis cache write failed", err, slog.String("key", key))
	}
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

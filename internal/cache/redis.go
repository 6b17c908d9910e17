package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pokojowo/match-service/internal/config"
	"github.com/redis/go-redis/v9"
)

// ResultTTL bounds how long a cached match result or count stays fresh.
// Profiles change rarely, so an hour is a reasonable staleness window.
const ResultTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// Get returns the cached value, or "" on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// Touch refreshes the TTL of an existing key, e.g. when a cached match is
// read by an active user.
func (c *RedisCache) Touch(ctx context.Context, key string) error {
	return c.Client.Expire(ctx, key, ResultTTL).Err()
}

// KeyForPairResult generates the Redis key for a cached pair result. The
// key is directional: the result names the candidate side, so viewer order
// matters even though the score itself is symmetric.
func (c *RedisCache) KeyForPairResult(viewerID, candidateID uint64) string {
	return fmt.Sprintf("match:pair:%d:%d", viewerID, candidateID)
}

// KeyForMatchCount generates the Redis key for a user's compatible-match
// count.
func (c *RedisCache) KeyForMatchCount(userID uint64) string {
	return fmt.Sprintf("match:count:%d", userID)
}

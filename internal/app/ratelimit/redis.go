package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisLimiter struct {
	rdb *redis.Client
	cfg Config
}

func NewRedisLimiter(rdb *redis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, cfg: cfg}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key

	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		// First hit opens the window.
		if err := l.rdb.Expire(ctx, redisKey, l.cfg.Window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return count <= int64(l.cfg.Limit), nil
}

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	sharedConfig "jannivaran/internal/shared/config"
	"jannivaran/internal/shared/logger"
)

// RedisRateLimiter implements a sliding window over a Redis sorted set. When
// FailOpenOnError is set, a Redis outage admits the request instead of
// blocking complaint intake.
type RedisRateLimiter struct {
	client *redis.Client
	config sharedConfig.RateLimitConfig
	logger logger.Interface
}

func NewRedisRateLimiter(client *redis.Client, config sharedConfig.RateLimitConfig, logger logger.Interface) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		logger: logger,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !l.config.Enabled {
		return true, nil
	}

	window := time.Duration(l.config.WindowMinutes) * time.Minute
	allowed, err := l.checkWindow(ctx, key, window, l.config.MaxComplaints)
	if err != nil {
		if l.config.FailOpenOnError {
			l.logger.Warnw("rate limiter backend unavailable, allowing request", "key", key, "error", err)
			return true, nil
		}
		return false, err
	}

	return allowed, nil
}

func (l *RedisRateLimiter) checkWindow(ctx context.Context, key string, window time.Duration, limit int) (bool, error) {
	redisKey := l.getKey(key, window)
	now := time.Now()
	windowStart := now.Add(-window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(limit), nil
}

// Reset clears all windows for a key. Used by admin tooling and tests.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("ratelimit:%s:*", key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	return nil
}

func (l *RedisRateLimiter) getKey(identifier string, window time.Duration) string {
	return fmt.Sprintf("ratelimit:%s:%s", identifier, window.String())
}

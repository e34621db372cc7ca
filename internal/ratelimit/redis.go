package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "safariq:ratelimit:"

// RedisLimiter is a fixed-window limiter whose counters live in redis, so
// several API instances share one budget per client.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	period time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, period time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		period: period,
	}
}

// Connect opens a redis client and verifies it responds
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("Connected to Redis")
	return rdb, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := redisKeyPrefix + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		ttl = pipe.PTTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit counter: %w", err)
	}

	count := int(incr.Val())
	remainingTTL := ttl.Val()

	// A fresh key (or one that lost its expiry) opens a new window.
	if count == 1 || remainingTTL < 0 {
		if err := l.client.PExpire(ctx, redisKey, l.period).Err(); err != nil {
			return Decision{}, fmt.Errorf("rate limit expiry: %w", err)
		}
		remainingTTL = l.period
	}

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(remainingTTL),
	}, nil
}

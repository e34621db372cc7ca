package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiterFixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	l := NewRedisLimiter(client, 3, time.Minute)

	for i := 1; i <= 3; i++ {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i)
	}

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	ttl := mr.TTL(redisKeyPrefix + "10.0.0.1")
	assert.True(t, ttl > 0 && ttl <= time.Minute, "ttl %v", ttl)

	mr.FastForward(time.Minute + time.Second)

	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Remaining)
}

func TestRedisLimiterRestoresMissingExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set(redisKeyPrefix+"k", "1"))

	l := NewRedisLimiter(client, 10, time.Minute)
	d, err := l.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.True(t, mr.TTL(redisKeyPrefix+"k") > 0)
}

func TestRedisLimiterError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	l := NewRedisLimiter(client, 10, time.Minute)
	_, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
}

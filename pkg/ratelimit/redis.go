package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "folio:ratelimit:"

// RedisLimiter 固定窗口计数，多实例共享
type RedisLimiter struct {
	rdb    *redis.Client
	window time.Duration
	max    int64
	now    func() time.Time
}

func NewRedisLimiter(rdb *redis.Client, window time.Duration, max int64) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, window: window, max: max, now: time.Now}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := r.now().UnixNano() / int64(r.window)
	redisKey := fmt.Sprintf("%s%s:%d", redisKeyPrefix, key, bucket)

	var incr *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, r.window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= r.max, nil
}

package ratelimit

import (
	"Folio/config"
	"context"

	"github.com/redis/go-redis/v9"
)

// Limiter 按 key 做准入判断，调用方不关心背后是内存还是 redis
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// New 根据配置选择后端
func New(conf *config.Config, rdb *redis.Client) Limiter {
	lc := conf.Limiter
	if lc.Backend == config.LimiterBackendRedis {
		return NewRedisLimiter(rdb, lc.Window, lc.Max)
	}
	return NewMemoryLimiter(lc.RPS, lc.Burst)
}

package client

import (
	"Folio/config"
	"Folio/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 仅在限流后端为 redis 时需要连通
func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if !conf.Limiter.Enabled || conf.Limiter.Backend != config.LimiterBackendRedis {
		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Fatal("connect redis error", zap.Error(err))
	}
	log.L.Info("redis client success")
	return client
}

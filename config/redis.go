package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	redisClient *redis.Client
	redisErr    error
	redisOnce   sync.Once
)

// ConnectRedis initializes a singleton Redis client from the configuration.
// It returns (nil, nil) when Redis is not configured and not required by the storage backend.
func ConnectRedis() (*redis.Client, error) {
	redisOnce.Do(func() {
		cfg := LoadConfig()
		if cfg.AppEnv == "test" {
			// Skip connecting Redis in test environment.
			return
		}
		addr := cfg.RedisAddr
		if addr == "" {
			if cfg.StorageBackend != BackendRedis {
				return
			}
			addr = "localhost:6379"
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			redisClient = nil
			redisErr = fmt.Errorf("redis ping failed: %w", err)
			return
		}

		redisClient = rdb
		log.Info().Str("addr", addr).Msg("connected to redis")
	})
	return redisClient, redisErr
}

// ConnectOptionalRedis connects Redis whenever REDIS_ADDR is set so the rate
// limiter can share counters regardless of the storage backend. Failures are
// logged and leave the limiter on its in-process fallback.
func ConnectOptionalRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb, err := ConnectRedis()
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, rate limiting stays in-process")
		return nil
	}
	return rdb
}

// GetRedisClient returns the initialized Redis client (may be nil if ConnectRedis failed or not called).
func GetRedisClient() *redis.Client {
	return redisClient
}


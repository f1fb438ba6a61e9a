package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/airborne_threat_detection/internal/config"
)

const defaultDialTimeout = 3 * time.Second

// NewRedisClient создает клиент для кеша инцидентов и очереди вебхуков.
// Клиент возвращается только после успешного PING.
func NewRedisClient(ctx context.Context, appCfg *config.Config) (*redis.Client, error) {
	opts := clientOptions(appCfg)
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return rdb, nil
}

func clientOptions(appCfg *config.Config) *redis.Options {
	opts := &redis.Options{
		Addr:        appCfg.RedisAddr,
		Password:    appCfg.RedisPass,
		DB:          appCfg.RedisDB,
		PoolSize:    appCfg.RedisPoolSize,
		DialTimeout: appCfg.RedisDialTimeout,
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	return opts
}

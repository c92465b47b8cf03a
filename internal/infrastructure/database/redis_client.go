package database

import (
	"context"
	"fmt"

	"po_tracker/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis opens a client and pings it once. The caller owns Close.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect redis at %s: %w", cfg.Address, err)
	}
	zap.L().Info("[database][redis] connected", zap.String("addr", cfg.Address), zap.Int("db", cfg.DB))
	return rdb, nil
}

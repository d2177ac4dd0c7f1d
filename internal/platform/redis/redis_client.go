package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"blog_backend/internal/config"
)

// NewRedisClient connects to Redis using the application configuration.
// Returns an error if no address is configured or the server is unreachable.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.RedisAddr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr)
	return rdb, nil
}

// Package redis provides a key-value store on a Redis server.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewClient creates and validates a Redis client connection.
func NewClient(ctx context.Context, url string, logger *zap.Logger) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	rdb := goredis.NewClient(opt)

	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("redis connected",
		zap.String("addr", opt.Addr),
		zap.Int("db", opt.DB),
	)

	return rdb, nil
}

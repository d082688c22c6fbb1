package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/git-tutor/internal/config"
	"github.com/aliskhannn/git-tutor/internal/infra/postgres"
	"github.com/aliskhannn/git-tutor/internal/infra/redis"
	"github.com/aliskhannn/git-tutor/internal/infra/sqlite"
	"github.com/aliskhannn/git-tutor/internal/repository"
	"github.com/aliskhannn/git-tutor/internal/storage"
)

// openKV opens the backend selected by cfg.Storage.Driver. The returned func
// releases its connections.
func openKV(ctx context.Context, cfg *config.Config, lg *zap.Logger) (repository.KV, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return storage.NewMemoryKV(), noop, nil

	case config.DriverFile:
		kv, err := storage.NewFileKV(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage: %w", err)
		}
		lg.Debug("file storage opened", zap.String("path", kv.Path()))
		return kv, noop, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return sqlite.NewKV(db), func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres storage: %w", err)
		}

		kv, err := postgres.NewKV(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("open postgres storage: %w", err)
		}
		return kv, pool.Close, nil

	case config.DriverRedis:
		rdb, err := redis.NewClient(ctx, cfg.Redis.URL, lg)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis storage: %w", err)
		}
		return redis.NewKV(rdb, cfg.Redis.KeyPrefix), func() { _ = rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.Storage.Driver)
	}
}

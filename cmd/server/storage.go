package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/schedule/internal/config"
	boltInfra "github.com/fastygo/schedule/internal/infrastructure/bolt"
	pgInfra "github.com/fastygo/schedule/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/schedule/internal/infrastructure/redis"
	"github.com/fastygo/schedule/repository"
	"github.com/fastygo/schedule/repository/memory"
)

type backend interface {
	repository.KeyValueStore
	Ping(ctx context.Context) error
	Close() error
}

func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverBolt:
		store, err := boltInfra.Open(cfg.Bolt.Path, cfg.Bolt.Bucket)
		if err != nil {
			return nil, fmt.Errorf("open bolt store: %w", err)
		}
		logger.Info("using bolt storage", zap.String("path", cfg.Bolt.Path))
		return store, nil

	case config.DriverRedis:
		client, err := redisInfra.NewClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("using redis storage", zap.String("prefix", cfg.Redis.Prefix))
		return redisInfra.NewStore(client, cfg.Redis.Prefix), nil

	case config.DriverPostgres:
		if err := pgInfra.RunMigrations(cfg, logger); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		pool, err := pgInfra.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return pgInfra.NewStore(pool), nil

	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

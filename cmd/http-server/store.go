package main

import (
	"context"

	"go.uber.org/fx"

	"constraintsvc/internal/adapters/database"
	"constraintsvc/internal/adapters/health"
	"constraintsvc/internal/adapters/repository/memory"
	"constraintsvc/internal/adapters/repository/postgres"
	redisRepository "constraintsvc/internal/adapters/repository/redis"
	"constraintsvc/internal/config"
	"constraintsvc/internal/core/ports"
	"constraintsvc/internal/platform/database/redis"
	platformHealth "constraintsvc/internal/platform/health"
	"constraintsvc/internal/platform/logger"
	"constraintsvc/internal/platform/retry"
)

type storeResult struct {
	fx.Out

	Repository ports.SchemaRepository
	Checkers   []platformHealth.Checker `group:"health_checkers,flatten"`
}

// provideStore picks the schema repository named by SCHEMA_STORE. The
// postgres store connects and applies its table on start; the redis store
// waits for the server to answer.
func provideStore(lc fx.Lifecycle, cfg *config.ValidationConfig, log logger.Logger) (storeResult, error) {
	switch cfg.Store {
	case config.StorePostgres:
		return providePostgresStore(lc, log)
	case config.StoreRedis:
		return provideRedisStore(lc, log)
	}
	log.Info("Using in-memory schema store")
	return storeResult{Repository: memory.NewRepository()}, nil
}

func providePostgresStore(lc fx.Lifecycle, log logger.Logger) (storeResult, error) {
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return storeResult{}, err
	}

	db := database.NewDatabaseLifecycle(dbCfg, log)
	repo := postgres.NewRepository(db)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Start(ctx); err != nil {
				return err
			}
			return repo.CreateTable(ctx)
		},
		OnStop: db.Stop,
	})

	return storeResult{
		Repository: repo,
		Checkers:   []platformHealth.Checker{health.NewDatabaseChecker(db, "postgres")},
	}, nil
}

func provideRedisStore(lc fx.Lifecycle, log logger.Logger) (storeResult, error) {
	redisCfg, err := config.LoadRedis()
	if err != nil {
		return storeResult{}, err
	}
	rc := redisCfg.Redis

	client, err := redis.New(rc.URL)
	if err != nil {
		return storeResult{}, err
	}

	connect := retry.New(
		retry.WithAttempts(rc.ConnectAttempts),
		retry.WithDelay(rc.ConnectDelay),
		retry.OnRetry(func(attempt uint, err error) {
			log.Warn("Redis not reachable", logger.Int("attempt", int(attempt)+1), logger.Error(err))
		}),
	)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Connecting to Redis", logger.String("key_prefix", rc.KeyPrefix))
			if err := client.Connect(ctx, connect, rc.PingTimeout); err != nil {
				log.Error("Failed to connect to Redis", logger.Error(err))
				return err
			}
			log.Info("Connected to Redis")
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return storeResult{
		Repository: redisRepository.NewRepository(client.UniversalClient, rc.KeyPrefix),
		Checkers:   []platformHealth.Checker{health.NewRedisChecker(client, "redis", rc.PingTimeout)},
	}, nil
}

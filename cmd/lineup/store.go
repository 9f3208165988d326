package main

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iamasit07/lineup/internal/config"
	"github.com/iamasit07/lineup/internal/repository/database"
	"github.com/iamasit07/lineup/internal/repository/file"
	"github.com/iamasit07/lineup/internal/repository/redis"
	"github.com/iamasit07/lineup/internal/service/command"
)

// openStore builds the save backend named by the config. The returned
// closer releases its connection.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (command.GameStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.SaveBackend {
	case config.BackendFile:
		return file.NewStore(cfg.SaveDir, logger), noop, nil

	case config.BackendSQLite, config.BackendPostgres:
		driver, dsn := database.DriverSQLite, cfg.SQLitePath
		if cfg.SaveBackend == config.BackendPostgres {
			driver, dsn = database.DriverPostgres, cfg.DatabaseURL
		}
		db, err := database.Open(driver, dsn, database.PoolConfig{
			MaxOpenConns:       cfg.DBMaxOpenConns,
			MaxIdleConns:       cfg.DBMaxIdleConns,
			ConnMaxLifetimeMin: cfg.DBConnMaxLifetimeMin,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, errors.Wrap(err, "migration failed")
		}
		logger.Info("database ready", zap.String("driver", driver))
		return database.NewSaveRepo(db, driver, logger), db.Close, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		store := redis.NewStore(client, cfg.SaveTTL, logger)
		return store, store.Close, nil
	}
	return nil, nil, errors.Errorf("unknown save backend %q", cfg.SaveBackend)
}

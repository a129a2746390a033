package routes

import (
	"context"

	"oficina_mecanica/internal/adapter/persistence/memory"
	"oficina_mecanica/internal/adapter/persistence/postgres"
	"oficina_mecanica/internal/adapter/persistence/repository"
	"oficina_mecanica/internal/infrastructure/config"
	"oficina_mecanica/internal/infrastructure/database"
	"oficina_mecanica/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// newUnitOfWork builds the persistence collaborator named by
// cfg.StorageDriver. The returned func releases its resources.
func newUnitOfWork(ctx context.Context, cfg config.Config, logger *log.Logger) (interfaces.IUnitOfWork, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		return memory.NewStore(), noop, nil

	case config.StoragePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			closeDB()
			return nil, noop, err
		}
		return postgres.NewUnitOfWork(db), closeDB, nil

	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, err
		}
		tables := repository.DefaultTables(cfg.DynamoDB.TablePrefix)
		if cfg.DynamoDB.CreateTables {
			if err := repository.EnsureTables(ctx, ddb, tables); err != nil {
				return nil, noop, err
			}
			logger.Info("dynamodb tables ready")
		}
		return repository.NewUnitOfWork(ddb, tables), noop, nil
	}
}

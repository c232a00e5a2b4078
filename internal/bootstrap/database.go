package bootstrap

import (
	"context"
	"time"

	"bondify-be/internal/catalog"
	"bondify-be/internal/config"
	"bondify-be/internal/model"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/repository/unitofwork"
	"bondify-be/internal/service"
	"bondify-be/pkg/database"

	"gorm.io/gorm"
)

// OpenDatabase connects to Postgres, or builds a migrated in-memory
// database when no connection string is configured. Either way an empty
// catalog is seeded from the bundle.
func OpenDatabase(ctx context.Context, cfg *config.Config, log logger.ILogger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.Database.Connection == "" {
		log.Warn("Database", "DB_CONNECTION_STRING not set, using in-memory storage", nil)
		db, err = database.NewInMemoryGormDB()
		if err == nil {
			err = database.Migrate(db, model.All()...)
		}
	} else {
		db, err = database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	}
	if err != nil {
		return nil, err
	}

	bundle, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	if _, err := service.SeedDatabase(ctx, unitofwork.NewRepositoryFactory(db), bundle, time.Now(), log); err != nil {
		return nil, err
	}
	return db, nil
}

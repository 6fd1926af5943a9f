package db_fx

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"cityinfo/internal/config"
	"cityinfo/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(seedDB),
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, logger)
			return nil
		},
	})
	return db, nil
}

func seedDB(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) {
	if !cfg.Database.Seed {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seeded, err := infra.SeedCities(ctx, db)
			if err != nil {
				return err
			}
			if seeded {
				logger.Info("Seeded demo cities")
			}
			return nil
		},
	})
}

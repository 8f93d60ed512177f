// Command migrate applies the credential store schema and exits.
package main

import (
	"context"
	"log/slog"

	"adpilot/config"
	logs "adpilot/internal/infra/log"
	"adpilot/internal/infra/persistence/model"
	"adpilot/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.DB.WithContext(ctx).AutoMigrate(model.AllModels()...); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}
			params.Logger.Info("Schema migrated", slog.Int("models", len(model.AllModels())))

			return params.Shutdown()
		},
	})
}

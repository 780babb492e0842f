// Package persistence selects the backing store of the directory.
package persistence

import (
	"context"
	"log/slog"

	"suiteprop/config"
	"suiteprop/internal/domain/lifecycle"
	"suiteprop/internal/domain/repository"
	"suiteprop/internal/errors"
	"suiteprop/internal/infra/persistence/memory"
	"suiteprop/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRepositoryFactory builds the store named by storage.driver.
func NewRepositoryFactory(params Params) (repository.RepositoryFactory, error) {
	driver := config.StorageDriverMemory
	if params.Config.Storage != nil {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Info("Using in-memory demo dataset")

		return memory.NewSeedStore(), nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		if params.Config.Storage.Seed {
			params.Lifecycle.Append(fx.Hook{
				OnStart: func(startCtx context.Context) error {
					ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
					defer cancel()

					return postgres.Seed(ctx, db, memory.SeedDataset(), params.Logger)
				},
			})
		}
		params.Logger.Info("Using postgres store", slog.Bool("seed", params.Config.Storage.Seed))

		return postgres.NewStore(db), nil

	default:
		return nil, errors.Errorf("unsupported storage driver %q", driver)
	}
}

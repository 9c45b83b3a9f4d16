// Package persistence selects the storage backend named in configuration
// and exposes its repositories to the rest of the application.
package persistence

import (
	"log/slog"

	"zerowaste/config"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/errors"
	"zerowaste/internal/infra/persistence/memory"
	"zerowaste/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the storage backend, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of components every backend provides.
type Repositories struct {
	fx.Out

	TxManager repository.TransactionManager
	Accounts  repository.AccountRepository
	Bookings  repository.BookingRepository
	Reviews   repository.ReviewRepository
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			TxManager: memory.NewTransactionManager(store),
			Accounts:  memory.NewAccountRepository(store),
			Bookings:  memory.NewBookingRepository(store),
			Reviews:   memory.NewReviewRepository(store),
		}, nil

	case config.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager: postgres.NewTransactionManager(db),
			Accounts:  postgres.NewAccountRepository(db),
			Bookings:  postgres.NewBookingRepository(db),
			Reviews:   postgres.NewReviewRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

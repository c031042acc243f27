package components

import (
	"context"
	"log/slog"

	"booth-reservation/internal/infra/db"
	"booth-reservation/internal/infra/memory"
	"booth-reservation/internal/infra/outbox"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/internal/infra/uow"
	"booth-reservation/internal/pkg/config"
	"booth-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
		func(p Persistence) shared.UnitOfWork { return p.UoW },
		func(p Persistence) outbox.Store { return p.Outbox },
	),
)

// Persistence pairs the unit of work with the outbox reading the same storage.
type Persistence struct {
	UoW    shared.UnitOfWork
	Outbox outbox.Store
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store, data does not survive a restart")
		store := memory.NewStore()
		return Persistence{UoW: store, Outbox: store}, nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Persistence{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	queries := sqlc.New()
	return Persistence{
		UoW:    uow.NewPostgresUoW(pool, queries, cfg.Store.TxMaxRetries),
		Outbox: outbox.NewPostgresStore(pool, queries),
	}, nil
}

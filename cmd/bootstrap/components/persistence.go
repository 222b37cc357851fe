package components

import (
	"context"

	"library-lending/internal/infra/cache"
	"library-lending/internal/infra/db"
	"library-lending/internal/infra/readstore"
	"library-lending/internal/infra/uow"
	"library-lending/internal/pkg/config"
	"library-lending/internal/usecase/commands"
	"library-lending/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewLendingReadStore,
			fx.As(new(queries.LendingReadStore)),
		),
		fx.Annotate(
			readstore.NewBorrowGateReadStore,
			fx.As(new(queries.BorrowGateReadStore)),
		),
		NewBookStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewBookStore wires the book read store, decorated with the Redis
// listing cache when one is configured. The second value lets writers
// invalidate the listing; without Redis it is a no-op.
func NewBookStore(lc fx.Lifecycle, cfg config.Config, dbtx db.DBTX) (queries.BookReadStore, commands.ListingCache, error) {
	base := readstore.NewBookReadStore(dbtx)
	if !cfg.Redis.Enabled() {
		return base, cache.NoopListingCache{}, nil
	}

	rdb, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	cached := cache.NewCachedBookReadStore(base, rdb, cfg.Redis.ListTTL)
	return cached, cached, nil
}

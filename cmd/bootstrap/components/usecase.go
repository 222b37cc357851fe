package components

import (
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/config"
	"library-lending/internal/usecase/commands"
	"library-lending/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookQueries,
		queries.NewUserQueries,
		newLendingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLendingCommands,
		commands.NewCatalogCommands,
		commands.NewIdentityCommands,
	),
)

func newLendingQueries(
	store queries.LendingReadStore,
	gate queries.BorrowGateReadStore,
	clk clock.Clock,
	cfg config.Config,
) queries.LendingQueries {
	return queries.NewLendingQueries(store, gate, clk, cfg.Lending.MaxActiveBorrows)
}

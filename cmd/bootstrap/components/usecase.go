package components

import (
	"log/slog"

	"petcare-backend/internal/pkg/clock"
	"petcare-backend/internal/pkg/config"
	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"
	"petcare-backend/internal/usecase/stock"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(store stock.ProductStore, logger *slog.Logger) *stock.Engine {
			return stock.NewEngine(store, logger)
		},
		fx.As(new(commands.StockReserver)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOrderCommands,
		commands.NewHealthRecordCommands,
		commands.NewPetCommands,
		func(
			events commands.EventRepository,
			pets commands.PetRepository,
			eventQueries queries.EventQueries,
			clk clock.Clock,
			cfg config.Config,
		) commands.EventCommands {
			return commands.NewEventCommands(events, pets, eventQueries, clk, cfg.Booking.CancelLeadTime)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOrderQueries,
		queries.NewPetQueries,
		queries.NewEventQueries,
		queries.NewHealthRecordQueries,
		queries.NewCatalogQueries,
		queries.NewRevenueQueries,
	),
)

package components

import (
	"petcare-backend/internal/infra/readstore"
	repo_impl "petcare-backend/internal/infra/repository"
	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"
	"petcare-backend/internal/usecase/stock"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductReader)),
			fx.As(new(stock.ProductStore)),
		),
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(commands.ServiceReader)),
		),
		fx.Annotate(
			repo_impl.NewPetRepository,
			fx.As(new(commands.PetRepository)),
		),
		fx.Annotate(
			repo_impl.NewHealthRecordRepository,
			fx.As(new(commands.HealthRecordRepository)),
		),
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewPetReadStore,
			fx.As(new(queries.PetReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewHealthRecordReadStore,
			fx.As(new(queries.HealthRecordReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRevenueReadStore,
			fx.As(new(queries.RevenueReadStore)),
		),
	),
)

package components

import (
	"time"

	"petcare-backend/internal/handler"
	"petcare-backend/internal/handler/api"
	"petcare-backend/internal/handler/middleware"
	"petcare-backend/internal/pkg/config"
	"petcare-backend/internal/pkg/jwt"
	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandlerFromConfig,
		api.NewOrderHandler,
		api.NewAdminOrderHandler,
		api.NewHealthRecordHandler,
		api.NewPetHandler,
		api.NewEventHandler,
		api.NewCatalogHandler,
		api.NewReportHandler,
		NewMetaHandlerFromConfig,
		NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandlerFromConfig(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *api.AuthHandler {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return api.NewAuthHandler(authCommands, userQueries, cfg.Cookie, tokenDuration)
}

func NewMetaHandlerFromConfig(cfg config.Config) *api.MetaHandler {
	return api.NewMetaHandler(cfg.Booking)
}

func NewAuthMiddleware(jwtService *jwt.Service) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtService)
}

func NewHandlers(
	auth *api.AuthHandler,
	order *api.OrderHandler,
	adminOrder *api.AdminOrderHandler,
	healthRecord *api.HealthRecordHandler,
	pet *api.PetHandler,
	event *api.EventHandler,
	catalog *api.CatalogHandler,
	report *api.ReportHandler,
	meta *api.MetaHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Order:        order,
		AdminOrder:   adminOrder,
		HealthRecord: healthRecord,
		Pet:          pet,
		Event:        event,
		Catalog:      catalog,
		Report:       report,
		Meta:         meta,
	}
}

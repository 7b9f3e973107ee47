package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petcare-backend/internal/handler/api"
	"petcare-backend/internal/handler/middleware"
	"petcare-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Order        *api.OrderHandler
	AdminOrder   *api.AdminOrderHandler
	HealthRecord *api.HealthRecordHandler
	Pet          *api.PetHandler
	Event        *api.EventHandler
	Catalog      *api.CatalogHandler
	Report       *api.ReportHandler
	Meta         *api.MetaHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/meta", h.Meta.GetMeta)

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.GetProduct},
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
			{Method: http.MethodGet, Path: "/services/:id", Handler: h.Catalog.GetService},
		})

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.CreateOrder},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListMyOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.GetOrder},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.CancelOrder},
			})
		}

		pets := apiGroup.Group("/pets")
		pets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pets, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Pet.CreatePet},
				{Method: http.MethodGet, Path: "", Handler: h.Pet.ListMyPets},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Pet.GetPet},
				{Method: http.MethodGet, Path: "/:id/health-records", Handler: h.Pet.ListPetHealthRecords},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(authMiddleware.RequireAuth())
		{
			addRoutes(events, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Event.CreateEvent},
				{Method: http.MethodGet, Path: "", Handler: h.Event.ListMyEvents},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Event.CancelEvent},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: h.AdminOrder.ListOrders},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.AdminOrder.GetOrder},
				{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: h.AdminOrder.CancelOrder},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.AdminOrder.UpdateOrderStatus},
				{Method: http.MethodPost, Path: "/health-records", Handler: h.HealthRecord.CreateRecord},
				{Method: http.MethodGet, Path: "/health-records/:id", Handler: h.HealthRecord.GetRecord},
				{Method: http.MethodPatch, Path: "/health-records/:id", Handler: h.HealthRecord.UpdateRecord},
				{Method: http.MethodDelete, Path: "/health-records/:id", Handler: h.HealthRecord.DeleteRecord},
				{Method: http.MethodGet, Path: "/reports/revenue", Handler: h.Report.GetRevenueReport},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

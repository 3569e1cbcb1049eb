package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"techfest-backend/internal/handler/api"
	"techfest-backend/internal/handler/middleware"
	"techfest-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	paymentHandler *api.PaymentHandler,
	registrationHandler *api.RegistrationHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, paymentHandler, registrationHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	paymentHandler *api.PaymentHandler,
	registrationHandler *api.RegistrationHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListEvents},
				{Method: http.MethodGet, Path: "/tech", Handler: catalogHandler.ListTechEvents},
				{Method: http.MethodGet, Path: "/non-tech", Handler: catalogHandler.ListNonTechEvents},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetEvent},
			})
		}

		workshops := apiGroup.Group("/workshops")
		{
			addRoutes(workshops, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListWorkshops},
				{Method: http.MethodGet, Path: "/categories", Handler: catalogHandler.ListWorkshopCategories},
				{Method: http.MethodGet, Path: "/levels", Handler: catalogHandler.ListWorkshopLevels},
				{Method: http.MethodGet, Path: "/category/:category", Handler: catalogHandler.ListWorkshopsByCategory},
				{Method: http.MethodGet, Path: "/level/:level", Handler: catalogHandler.ListWorkshopsByLevel},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetWorkshop},
			})
		}

		passes := apiGroup.Group("/passes")
		{
			addRoutes(passes, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListPasses},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetPass},
			})
		}

		payment := apiGroup.Group("/payment")
		{
			// The webhook authenticates with its own HMAC header, not a
			// bearer token.
			addRoutes(payment, []route{
				{Method: http.MethodPost, Path: "/webhook", Handler: paymentHandler.Webhook},
			})

			authRequired := payment.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/create-order", Handler: paymentHandler.CreateOrder},
				{Method: http.MethodPost, Path: "/verify-payment", Handler: paymentHandler.VerifyPayment},
				{Method: http.MethodGet, Path: "/status/:orderId", Handler: paymentHandler.GetOrderStatus},
			})
		}

		registrations := apiGroup.Group("/registration")
		registrations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(registrations, []route{
				{Method: http.MethodPost, Path: "/submit", Handler: registrationHandler.Submit},
				{Method: http.MethodPost, Path: "/check-duplicate", Handler: registrationHandler.CheckDuplicate},
				{Method: http.MethodGet, Path: "/my-registrations", Handler: registrationHandler.MyRegistrations},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/registrations", Handler: adminHandler.ListRegistrations},
				{Method: http.MethodPost, Path: "/registrations/:id/check-in", Handler: adminHandler.CheckIn},
				{Method: http.MethodPost, Path: "/registrations/:id/attendance", Handler: adminHandler.MarkAttendance},
				{Method: http.MethodPost, Path: "/registrations/:id/reassign-workshop", Handler: adminHandler.ReassignWorkshop},
				{Method: http.MethodPost, Path: "/registrations/:id/notes", Handler: adminHandler.UpdateNotes},
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

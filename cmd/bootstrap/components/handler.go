package components

import (
	"techfest-backend/internal/handler"
	"techfest-backend/internal/handler/api"
	"techfest-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewPaymentHandler,
		api.NewRegistrationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

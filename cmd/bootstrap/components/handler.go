package components

import (
	"clubhub/internal/handler"
	"clubhub/internal/handler/api"
	"clubhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVisitHandler,
		api.NewLendingHandler,
		api.NewKioskHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

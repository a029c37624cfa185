package components

import (
	"brewzzy/internal/handler"
	"brewzzy/internal/handler/api"
	"brewzzy/internal/handler/middleware"
	"brewzzy/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		api.NewSessionHandler,
		api.NewCafeHandler,
		api.NewBookingHandler,
		api.NewRedemptionHandler,
		api.NewNavigationHandler,
		api.NewNotificationHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

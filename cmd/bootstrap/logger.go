package bootstrap

import (
	"log/slog"

	"brewzzy/internal/handler/middleware"
	"brewzzy/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewSlogLogger,
	),
)

// NewSlogLogger builds the process-wide logger from config. The middleware
// Logger owns handler setup so request logging and startup logging share one
// format.
func NewSlogLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}

package bootstrap

import (
	"time"

	"brewzzy/internal/pkg/config"
	"brewzzy/internal/pkg/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionService,
	),
)

func NewSessionService(cfg config.Config) *session.Service {
	duration, err := time.ParseDuration(cfg.Session.Duration)
	if err != nil {
		panic("invalid SESSION_DURATION: " + err.Error())
	}

	return session.NewService(cfg.Session.Secret, duration)
}

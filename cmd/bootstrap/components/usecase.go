package components

import (
	"brewzzy/internal/pkg/clock"
	"brewzzy/internal/pkg/config"
	"brewzzy/internal/pkg/ident"
	"brewzzy/internal/usecase/commands"
	"brewzzy/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ident.NewGenerator,
	func(cfg config.Config) config.BookingConfig {
		return cfg.Booking
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSessionCommands,
		commands.NewBookingCommands,
		commands.NewRedemptionCommands,
		commands.NewNavigationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCafeQueries,
		queries.NewPlanQueries,
		queries.NewBookingQueries,
		queries.NewRedemptionQueries,
		queries.NewFlowQueries,
		queries.NewNavigationQueries,
		queries.NewNotificationQueries,
	),
)

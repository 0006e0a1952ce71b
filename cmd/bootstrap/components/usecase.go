package components

import (
	"fleet-rental/internal/pkg/clock"
	"fleet-rental/internal/usecase/commands"
	"fleet-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewRuleCommands,
		commands.NewVehicleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewBookingQueries,
		queries.NewRuleQueries,
		queries.NewVehicleQueries,
	),
)

package components

import (
	"hotelres/internal/pkg/clock"
	"hotelres/internal/usecase"
	"hotelres/internal/usecase/commands"
	"hotelres/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		commands.NewNoDiscount,
		fx.As(new(commands.DiscountResolver)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewHoldCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

package components

import (
	"resource-desk/internal/pkg/clock"
	"resource-desk/internal/usecase"
	"resource-desk/internal/usecase/commands"
	"resource-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBorrowingCommands,
		commands.NewBookingCommands,
		commands.NewAcquiringCommands,
		commands.NewConfirmationUseCase,
		commands.NewMyRequestUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRequestQueries,
		queries.NewConfirmationQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

package components

import (
	"spa-pos/internal/pkg/clock"
	"spa-pos/internal/usecase"
	"spa-pos/internal/usecase/commands"
	"spa-pos/internal/usecase/queries"
	"spa-pos/internal/usecase/shared"

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
	shared.NewSessionGuard,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewTransactionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewStaffQueries,
		queries.NewCustomerQueries,
		queries.NewTransactionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewSessionResolver,
	),
)

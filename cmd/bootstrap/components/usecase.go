package components

import (
	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/keymutex"
	"clubhub/internal/usecase"
	"clubhub/internal/usecase/commands"
	"clubhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

// All commands share one keyed mutex so visit, kiosk and lending
// operations on the same member or item serialize against each other.
var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	keymutex.New,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVisitCommands,
		commands.NewKioskCommands,
		commands.NewLendingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVisitQueries,
		queries.NewLendingQueries,
		queries.NewMemberQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

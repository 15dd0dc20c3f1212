package components

import (
	"time"

	"turnos-gateway/internal/pkg/clock"
	"turnos-gateway/internal/pkg/config"
	"turnos-gateway/internal/usecase"
	"turnos-gateway/internal/usecase/commands"
	"turnos-gateway/internal/usecase/queries"

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
	NewLocation,
)

// NewLocation resolves the business timezone all calendar-day bucketing uses.
// Falls back to the configured fixed offset when tzdata is unavailable.
func NewLocation(cfg config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Log.TimeZone)
	if err != nil {
		return time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset)
	}
	return loc
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewClienteCommands,
		commands.NewTurnoCommands,
		commands.NewCheckoutCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTurnoQueries,
		queries.NewCatalogoQueries,
		queries.NewFacturaQueries,
		queries.NewEstadisticasQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

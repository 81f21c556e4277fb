package components

import (
	"log/slog"

	"reservation-engine/internal/domain/selection"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"
	"reservation-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewCommandDeps,
		fx.Annotate(
			NewMeetingCommands,
			fx.As(new(commands.MeetingUseCase)),
		),
		fx.Annotate(
			NewParkingCommands,
			fx.As(new(commands.ParkingUseCase)),
		),
		NewReservationQueries,
	),
)

type commandDepsIn struct {
	fx.In

	Catalog  shared.CatalogReader
	Store    shared.ReservationStore
	Locks    commands.ResourceLocks
	Backend  shared.PersistenceBackend
	Notifier shared.NotificationSink
	Clock    clock.Clock
	Logger   *slog.Logger
}

func NewCommandDeps(in commandDepsIn) commands.Deps {
	return commands.Deps{
		Catalog:  in.Catalog,
		Store:    in.Store,
		Locks:    in.Locks,
		Backend:  in.Backend,
		Notifier: in.Notifier,
		Clock:    in.Clock,
		Logger:   in.Logger,
	}
}

func NewMeetingCommands(cfg config.Config, deps commands.Deps) (*commands.MeetingCommands, error) {
	policy, err := selection.ByName(cfg.Engine.RoomPolicy)
	if err != nil {
		return nil, err
	}
	return commands.NewMeetingCommands(policy, deps), nil
}

func NewParkingCommands(cfg config.Config, deps commands.Deps) (*commands.ParkingCommands, error) {
	policy, err := selection.ByName(cfg.Engine.ParkingPolicy)
	if err != nil {
		return nil, err
	}
	return commands.NewParkingCommands(policy, deps), nil
}

func NewReservationQueries(cfg config.Config, catalog shared.CatalogReader, store shared.ReservationStore) (queries.ReservationQueries, error) {
	loc, err := cfg.Engine.DayLocation()
	if err != nil {
		return nil, err
	}
	return queries.NewReservationQueries(catalog, store, loc), nil
}

package components

import (
	"reservation-engine/internal/handler"
	"reservation-engine/internal/handler/api"
	"reservation-engine/internal/infra/catalog"
	"reservation-engine/internal/infra/notification"
	"reservation-engine/internal/infra/store"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewParkingHandler,
		NewResourceHandler,
		NewHealthHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewResourceHandler(cfg config.Config, q queries.ReservationQueries, clk clock.Clock) (*api.ResourceHandler, error) {
	loc, err := cfg.Engine.DayLocation()
	if err != nil {
		return nil, err
	}
	return api.NewResourceHandler(q, clk, loc), nil
}

func NewHealthHandler(c *catalog.Catalog, s *store.MemoryStore, d *notification.Dispatcher) *api.HealthHandler {
	return api.NewHealthHandler(c, s, d)
}

type handlersIn struct {
	fx.In

	Reservation *api.ReservationHandler
	Resource    *api.ResourceHandler
	Parking     *api.ParkingHandler
	Health      *api.HealthHandler
}

func NewHandlers(in handlersIn) handler.Handlers {
	return handler.Handlers{
		Reservation: in.Reservation,
		Resource:    in.Resource,
		Parking:     in.Parking,
		Health:      in.Health,
	}
}

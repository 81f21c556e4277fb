package commands

import (
	"context"
	"hash/fnv"
	"log/slog"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/domain/selection"
	"reservation-engine/internal/infra/locks"
	"reservation-engine/internal/pkg/errs"
)

// vehicleStripes bounds the lock arena used to serialize park/leave per
// vehicle. Collisions only cost a little extra waiting.
const vehicleStripes = 64

type ParkingUseCase interface {
	Park(ctx context.Context, vehicleID string, vehicleType resource.VehicleType) (*reservation.Reservation, error)
	Leave(ctx context.Context, vehicleID string) (*reservation.Reservation, error)
}

var _ ParkingUseCase = (*ParkingCommands)(nil)

// ParkingCommands occupies spots with open-ended reservations, one per vehicle.
type ParkingCommands struct {
	*ReservationService
	vehicles *locks.Registry
}

func NewParkingCommands(policy selection.Policy, deps Deps) *ParkingCommands {
	return &ParkingCommands{
		ReservationService: NewReservationService("parking", policy, deps),
		vehicles:           locks.NewRegistry(vehicleStripes, 0),
	}
}

// Park places the vehicle in the first free spot its type fits into. A
// vehicle that is already parked is rejected.
func (p *ParkingCommands) Park(ctx context.Context, vehicleID string, vehicleType resource.VehicleType) (*reservation.Reservation, error) {
	occupants, err := reservation.NewOccupants([]string{vehicleID})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}
	vehicleID = occupants.Refs()[0]

	window, err := reservation.NewOpenWindow(p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	guard, err := p.vehicles.Acquire(ctx, stripe(vehicleID))
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	if current, ok := p.store.FindByOccupant(vehicleID); ok && current.IsOpen() {
		p.logger.InfoContext(ctx, "park rejected",
			slog.String("reason", "already_parked"),
			slog.String("vehicle_id", vehicleID),
			slog.String("resource_id", current.ResourceID().String()),
		)
		return nil, errs.ErrAlreadyOccupied
	}

	return p.Reserve(ctx, ReserveRequest{
		Constraint:     resource.ConstraintForVehicle(vehicleType),
		Window:         window,
		Occupants:      []string{vehicleID},
		ScanCandidates: true,
	})
}

// Leave frees the spot the vehicle occupies.
func (p *ParkingCommands) Leave(ctx context.Context, vehicleID string) (*reservation.Reservation, error) {
	occupants, err := reservation.NewOccupants([]string{vehicleID})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}
	vehicleID = occupants.Refs()[0]

	guard, err := p.vehicles.Acquire(ctx, stripe(vehicleID))
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	current, ok := p.store.FindByOccupant(vehicleID)
	if !ok || !current.IsOpen() {
		return nil, errs.ErrReservationNotFound
	}
	return p.Cancel(ctx, current.ID())
}

func stripe(vehicleID string) resource.Handle {
	h := fnv.New32a()
	_, _ = h.Write([]byte(vehicleID))
	return resource.Handle(h.Sum32() % vehicleStripes)
}

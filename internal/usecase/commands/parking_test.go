//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/domain/selection"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLot(t *testing.T) (*engine, *commands.ParkingCommands) {
	t.Helper()
	e := newEngine(t,
		builder.Room("R1", 4),
		builder.Spot("A-L1-001", resource.KindMotorcycle),
		builder.Spot("A-L1-002", resource.KindCompact),
		builder.Spot("A-L1-003", resource.KindLarge),
	)
	return e, commands.NewParkingCommands(selection.FirstFit{}, e.deps())
}

func TestPark(t *testing.T) {
	ctx := context.Background()
	e, lot := newLot(t)

	bike, err := lot.Park(ctx, "BIKE-1", resource.VehicleMotorcycle)
	require.NoError(t, err)
	assert.Equal(t, resource.ID("A-L1-001"), bike.ResourceID())
	assert.True(t, bike.IsOpen())
	assert.Equal(t, e.clock.Now(), bike.Window().Start())

	car, err := lot.Park(ctx, " CAR-1 ", resource.VehicleCar)
	require.NoError(t, err)
	assert.Equal(t, resource.ID("A-L1-002"), car.ResourceID())
	assert.Equal(t, []string{"CAR-1"}, car.Occupants().Refs())

	t.Run("already parked vehicle is rejected", func(t *testing.T) {
		_, err := lot.Park(ctx, "CAR-1", resource.VehicleCar)
		assert.True(t, errs.Is(err, errs.ErrAlreadyOccupied))
	})

	t.Run("second car skips the taken spot", func(t *testing.T) {
		car2, err := lot.Park(ctx, "CAR-2", resource.VehicleCar)
		require.NoError(t, err)
		assert.Equal(t, resource.ID("A-L1-003"), car2.ResourceID())
		_, err = lot.Leave(ctx, "CAR-2")
		require.NoError(t, err)
	})

	t.Run("truck needs a large spot", func(t *testing.T) {
		truck, err := lot.Park(ctx, "TRUCK-1", resource.VehicleTruck)
		require.NoError(t, err)
		assert.Equal(t, resource.ID("A-L1-003"), truck.ResourceID())

		_, err = lot.Park(ctx, "TRUCK-2", resource.VehicleTruck)
		assert.True(t, errs.Is(err, errs.ErrNoCapacity), "a full lot is no capacity, not a conflict")
	})

	t.Run("unknown vehicle type", func(t *testing.T) {
		_, err := lot.Park(ctx, "UFO-1", resource.VehicleType("ufo"))
		assert.True(t, errs.Is(err, errs.ErrNoCapacity))
	})

	t.Run("blank vehicle id", func(t *testing.T) {
		_, err := lot.Park(ctx, "  ", resource.VehicleCar)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})
}

func TestLeave(t *testing.T) {
	ctx := context.Background()
	e, lot := newLot(t)

	parked, err := lot.Park(ctx, "CAR-1", resource.VehicleCar)
	require.NoError(t, err)

	e.clock.Add(90 * time.Minute)
	left, err := lot.Leave(ctx, "CAR-1")
	require.NoError(t, err)
	assert.Equal(t, parked.ID(), left.ID())
	assert.True(t, left.IsCanceled())
	end, bounded := left.Window().End()
	assert.True(t, bounded)
	assert.Equal(t, e.clock.Now(), end)

	_, err = lot.Leave(ctx, "CAR-1")
	assert.True(t, errs.Is(err, errs.ErrReservationNotFound))

	_, err = lot.Leave(ctx, "NEVER-PARKED")
	assert.True(t, errs.Is(err, errs.ErrReservationNotFound))

	again, err := lot.Park(ctx, "CAR-1", resource.VehicleCar)
	require.NoError(t, err, "a vehicle that left can park again")
	assert.Equal(t, resource.ID("A-L1-002"), again.ResourceID())
}

func TestParkSameVehicleConcurrently(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t,
		builder.Spot("A-L1-001", resource.KindCompact),
		builder.Spot("A-L1-002", resource.KindCompact),
		builder.Spot("A-L1-003", resource.KindCompact),
	)
	lot := commands.NewParkingCommands(selection.FirstFit{}, e.deps())

	var (
		parked atomic.Int32
		wg     sync.WaitGroup
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := lot.Park(ctx, "CAR-1", resource.VehicleCar); err == nil {
				parked.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), parked.Load())
	assert.Len(t, e.store.ListByOccupant("CAR-1"), 1)
}

func TestParkManyVehicles(t *testing.T) {
	ctx := context.Background()
	specs := make([]resource.Spec, 0, 10)
	for i := range 10 {
		specs = append(specs, builder.Spot(fmt.Sprintf("A-L1-%03d", i+1), resource.KindCompact))
	}
	e := newEngine(t, specs...)
	lot := commands.NewParkingCommands(selection.FirstFit{}, e.deps())

	var wg sync.WaitGroup
	for i := range 11 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = lot.Park(ctx, fmt.Sprintf("CAR-%d", i), resource.VehicleCar)
		}()
	}
	wg.Wait()

	for _, s := range specs {
		assert.Len(t, e.active(s.ID), 1, "spot %s", s.ID)
	}
	assert.Equal(t, 10, e.store.Len(), "eleventh car finds the lot full")
}

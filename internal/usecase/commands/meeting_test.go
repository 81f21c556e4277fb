//go:build unit

package commands_test

import (
	"context"
	"testing"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/domain/selection"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingBook(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, builder.Room("big", 10), builder.Room("small", 4), builder.Room("medium", 6))
	meetings := commands.NewMeetingCommands(selection.SmallestFit{}, e.deps())

	book := func(from, to int, minCapacity int, attendees ...string) (*reservation.Reservation, error) {
		return meetings.Book(ctx, commands.BookMeetingRequest{
			Start:       at(from),
			End:         at(to),
			Attendees:   attendees,
			MinCapacity: minCapacity,
		})
	}

	t.Run("room must seat every attendee", func(t *testing.T) {
		r, err := book(9, 10, 0, "a", "b", "c", "d", "e")
		require.NoError(t, err)
		assert.Equal(t, resource.ID("medium"), r.ResourceID())
	})

	t.Run("min capacity raises the room size", func(t *testing.T) {
		r, err := book(9, 10, 8, "a")
		require.NoError(t, err)
		assert.Equal(t, resource.ID("big"), r.ResourceID())
	})

	t.Run("duplicate attendees count once", func(t *testing.T) {
		r, err := book(11, 12, 0, "a", "a", "b", "b", "c", "d")
		require.NoError(t, err)
		assert.Equal(t, resource.ID("small"), r.ResourceID())
		assert.Equal(t, 4, r.Occupants().Len())
	})

	t.Run("touching windows share a room", func(t *testing.T) {
		r, err := book(12, 13, 0, "x")
		require.NoError(t, err)
		assert.Equal(t, resource.ID("small"), r.ResourceID())
	})

	t.Run("pinned room", func(t *testing.T) {
		r, err := meetings.Book(ctx, commands.BookMeetingRequest{
			Start: at(14), End: at(15), Attendees: []string{"a"}, RoomID: "big",
		})
		require.NoError(t, err)
		assert.Equal(t, resource.ID("big"), r.ResourceID())
	})

	tests := []struct {
		name string
		req  commands.BookMeetingRequest
		is   error
	}{
		{name: "reversed window", req: commands.BookMeetingRequest{Start: at(10), End: at(9), Attendees: []string{"a"}}, is: reservation.ErrInvalidWindow},
		{name: "no attendees", req: commands.BookMeetingRequest{Start: at(9), End: at(10)}, is: reservation.ErrNoOccupants},
		{name: "negative capacity", req: commands.BookMeetingRequest{Start: at(9), End: at(10), Attendees: []string{"a"}, MinCapacity: -1}, is: resource.ErrNegativeCapacity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := meetings.Book(ctx, tc.req)
			assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
			assert.ErrorIs(t, err, tc.is)
		})
	}

	t.Run("a taken room is a conflict, not a fallback", func(t *testing.T) {
		_, err := book(11, 12, 0, "z")
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("oversized meeting", func(t *testing.T) {
		_, err := book(16, 17, 11, "a")
		assert.True(t, errs.Is(err, errs.ErrNoCapacity))
	})
}

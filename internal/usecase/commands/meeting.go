package commands

import (
	"context"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/domain/selection"
	"reservation-engine/internal/pkg/errs"
)

type BookMeetingRequest struct {
	Start     time.Time
	End       time.Time
	Attendees []string
	// MinCapacity raises the room size above the attendee count.
	MinCapacity int
	RoomID      resource.ID
}

type MeetingUseCase interface {
	Book(ctx context.Context, req BookMeetingRequest) (*reservation.Reservation, error)
	ReservationCommands
}

var _ MeetingUseCase = (*MeetingCommands)(nil)

// MeetingCommands books timed rooms. The room must seat every attendee.
type MeetingCommands struct {
	*ReservationService
}

func NewMeetingCommands(policy selection.Policy, deps Deps) *MeetingCommands {
	return &MeetingCommands{ReservationService: NewReservationService("meeting", policy, deps)}
}

func (m *MeetingCommands) Book(ctx context.Context, req BookMeetingRequest) (*reservation.Reservation, error) {
	window, err := reservation.NewWindow(req.Start, req.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}
	attendees, err := reservation.NewOccupants(req.Attendees)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}
	if req.MinCapacity < 0 {
		return nil, errs.Mark(resource.ErrNegativeCapacity, errs.ErrInvalidRequest)
	}

	return m.Reserve(ctx, ReserveRequest{
		Constraint: resource.RoomConstraint(max(req.MinCapacity, attendees.Len())),
		Window:     window,
		Occupants:  attendees.Refs(),
		ResourceID: req.RoomID,
	})
}

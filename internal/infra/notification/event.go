// Package notification delivers reservation events to occupants off the
// request path.
package notification

import (
	"time"

	"reservation-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventCreated   EventKind = "reservation.created"
	EventCancelled EventKind = "reservation.cancelled"
)

type Event struct {
	Kind          EventKind  `json:"kind"`
	Recipients    []string   `json:"recipients"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	ResourceID    string     `json:"resource_id"`
	Start         time.Time  `json:"start"`
	End           *time.Time `json:"end,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func newEvent(kind EventKind, recipients []string, r *reservation.Reservation, now time.Time) Event {
	ev := Event{
		Kind:          kind,
		Recipients:    append([]string(nil), recipients...),
		ReservationID: r.ID(),
		ResourceID:    r.ResourceID().String(),
		Start:         r.Window().Start(),
		OccurredAt:    now,
	}
	if end, ok := r.Window().End(); ok {
		ev.End = &end
	}
	return ev
}

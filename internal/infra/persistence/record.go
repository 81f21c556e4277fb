package persistence

import (
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// record is the storage shape of a reservation shared by the key-value
// backends. End is nil for open occupations.
type record struct {
	ID         uuid.UUID  `json:"id"`
	ResourceID string     `json:"resource_id"`
	Occupants  []string   `json:"occupants"`
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toRecord(r *reservation.Reservation) record {
	rec := record{
		ID:         r.ID(),
		ResourceID: r.ResourceID().String(),
		Occupants:  r.Occupants().Refs(),
		Start:      r.Window().Start(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
	}
	if end, ok := r.Window().End(); ok {
		rec.End = &end
	}
	return rec
}

func fromRecord(rec record) (*reservation.Reservation, error) {
	return reconstruct(rec.ID, rec.ResourceID, rec.Occupants, rec.Start, rec.End, rec.Status, rec.CreatedAt)
}

func reconstruct(
	id uuid.UUID,
	resourceID string,
	occupantRefs []string,
	start time.Time,
	end *time.Time,
	status string,
	createdAt time.Time,
) (*reservation.Reservation, error) {
	occupants, err := reservation.NewOccupants(occupantRefs)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored occupants")
	}

	var window reservation.Window
	if end == nil {
		window, err = reservation.NewOpenWindow(start)
	} else {
		window, err = reservation.NewWindow(start, *end)
	}
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored window")
	}

	return reservation.ReconstructReservation(
		id,
		resource.ID(resourceID),
		occupants,
		window,
		reservation.Status(status),
		createdAt,
	)
}

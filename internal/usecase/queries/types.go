package queries

import (
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"

	"github.com/google/uuid"
)

// ReservationView is the read shape of a reservation. End is nil while an
// occupation is still open.
type ReservationView struct {
	ID           uuid.UUID  `json:"id"`
	ResourceID   string     `json:"resource_id"`
	ResourceName string     `json:"resource_name"`
	Occupants    []string   `json:"occupants"`
	Start        time.Time  `json:"start"`
	End          *time.Time `json:"end,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ResourceView represents read-optimized resource data
type ResourceView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Mode     string `json:"mode"`
	Capacity int    `json:"capacity"`
	Level    int    `json:"level,omitempty"`
}

func NewReservationView(r *reservation.Reservation, res *resource.Resource) *ReservationView {
	v := &ReservationView{
		ID:         r.ID(),
		ResourceID: r.ResourceID().String(),
		Occupants:  r.Occupants().Refs(),
		Start:      r.Window().Start(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
	}
	if end, ok := r.Window().End(); ok {
		v.End = &end
	}
	if res != nil {
		v.ResourceName = res.Name()
	}
	return v
}

func NewResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:       r.ID().String(),
		Name:     r.Name(),
		Kind:     r.Kind().String(),
		Mode:     r.Mode().String(),
		Capacity: r.Capacity(),
		Level:    r.Level(),
	}
}

package response

import (
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/usecase/queries"
)

type ReservationResponse struct {
	ID           string     `json:"id"`
	ResourceID   string     `json:"resource_id"`
	ResourceName string     `json:"resource_name,omitempty"`
	Occupants    []string   `json:"occupants"`
	Start        time.Time  `json:"start"`
	End          *time.Time `json:"end,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return FromReservationView(queries.NewReservationView(r, nil))
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID.String(),
		ResourceID:   v.ResourceID,
		ResourceName: v.ResourceName,
		Occupants:    v.Occupants,
		Start:        v.Start,
		End:          v.End,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

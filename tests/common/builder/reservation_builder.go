//go:build unit || e2e

package builder

import (
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	reqdto "reservation-engine/internal/handler/dto/request"
	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ResourceID   resource.ID
	ResourceName string
	Occupants    []string
	Start        time.Time
	End          time.Time
	Open         bool
	Capacity     int
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ResourceID:   "R1",
		ResourceName: "R1",
		Occupants:    []string{"alice@example.com", "bob@example.com"},
		Start:        start,
		End:          start.Add(time.Hour),
		CreatedAt:    start.Add(-24 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithResource(id resource.ID) *ReservationBuilder {
	b.ResourceID = id
	b.ResourceName = string(id)
	return b
}

func (b *ReservationBuilder) WithOccupants(refs ...string) *ReservationBuilder {
	b.Occupants = refs
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.Start, b.End, b.Open = start, end, false
	return b
}

// WithOpenWindow turns the reservation into an open-ended occupation.
func (b *ReservationBuilder) WithOpenWindow(start time.Time) *ReservationBuilder {
	b.Start, b.Open = start, true
	return b
}

func (b *ReservationBuilder) BuildWindow() (reservation.Window, error) {
	if b.Open {
		return reservation.NewOpenWindow(b.Start)
	}
	return reservation.NewWindow(b.Start, b.End)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	w, err := b.BuildWindow()
	if err != nil {
		return nil, err
	}
	occ, err := reservation.NewOccupants(b.Occupants)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.ResourceID, occ, w, b.CreatedAt)
}

// MustBuildDomain panics on invalid builder state; for fixtures only.
func (b *ReservationBuilder) MustBuildDomain() *reservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Start:     b.Start,
		End:       b.End,
		Attendees: b.Occupants,
		Capacity:  b.Capacity,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	v := &queries.ReservationView{
		ID:           uuid.New(),
		ResourceID:   b.ResourceID.String(),
		ResourceName: b.ResourceName,
		Occupants:    b.Occupants,
		Start:        b.Start,
		Status:       reservation.StatusConfirmed.String(),
		CreatedAt:    b.CreatedAt,
	}
	if !b.Open {
		end := b.End
		v.End = &end
	}
	return v
}

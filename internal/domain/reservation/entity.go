package reservation

import (
	"time"

	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationCanceled = errs.New("reservation is already canceled")
	ErrInvalidStatus       = errs.New("invalid reservation status")
	ErrMissingResource     = errs.New("reservation requires a resource id")
)

type Reservation struct {
	id         uuid.UUID
	resourceID resource.ID
	occupants  Occupants
	window     Window
	status     Status
	createdAt  time.Time
}

func NewReservation(resourceID resource.ID, occupants Occupants, window Window, now time.Time) (*Reservation, error) {
	if resourceID == "" {
		return nil, ErrMissingResource
	}
	if occupants.Len() == 0 {
		return nil, ErrNoOccupants
	}
	if window.IsZero() {
		return nil, ErrZeroStart
	}

	return &Reservation{
		id:         uuid.New(),
		resourceID: resourceID,
		occupants:  occupants,
		window:     window,
		status:     StatusConfirmed,
		createdAt:  now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	resourceID resource.ID,
	occupants Occupants,
	window Window,
	status Status,
	createdAt time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if resourceID == "" {
		return nil, ErrMissingResource
	}
	return &Reservation{
		id:         id,
		resourceID: resourceID,
		occupants:  occupants,
		window:     window,
		status:     status,
		createdAt:  createdAt,
	}, nil
}

// Cancel moves a confirmed reservation to its terminal state. Open-ended
// occupations are closed at now.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCanceled {
		return ErrReservationCanceled
	}
	r.status = StatusCanceled
	r.window = r.window.Close(now)
	return nil
}

// Clone returns a copy that shares no mutable state with r.
func (r *Reservation) Clone() *Reservation {
	c := *r
	c.occupants = Occupants{refs: r.occupants.Refs()}
	return &c
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCanceled() bool {
	return r.status == StatusCanceled
}

func (r *Reservation) IsOpen() bool {
	return r.window.IsOpen()
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) ResourceID() resource.ID { return r.resourceID }
func (r *Reservation) Occupants() Occupants    { return r.occupants }
func (r *Reservation) Window() Window          { return r.window }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }

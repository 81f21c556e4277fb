package shared

import (
	"context"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"

	"github.com/google/uuid"
)

// CatalogReader is the read-only view of the provisioned inventory.
type CatalogReader interface {
	Get(id resource.ID) (*resource.Resource, error)
	ListByConstraint(c resource.Constraint) []*resource.Resource
	All() []*resource.Resource
}

// ReservationStore holds the active reservations. Implementations synchronize
// internally and hand out copies.
type ReservationStore interface {
	Save(r *reservation.Reservation)
	Get(id uuid.UUID) (*reservation.Reservation, bool)
	FindByResourceWindow(resourceID resource.ID, w reservation.Window) []*reservation.Reservation
	FindByOccupant(ref string) (*reservation.Reservation, bool)
	ListByOccupant(ref string) []*reservation.Reservation
	ListByResource(resourceID resource.ID) []*reservation.Reservation
	Remove(id uuid.UUID) bool
}

// NotificationSink is told about commits and cancellations after the fact.
// Calls must not block the caller and never report failure.
type NotificationSink interface {
	NotifyCreated(occupants []string, r *reservation.Reservation)
	NotifyCancelled(occupants []string, r *reservation.Reservation)
}

// PersistenceBackend mirrors store mutations durably. Save and Remove run
// under the owning resource's guard.
type PersistenceBackend interface {
	Save(ctx context.Context, r *reservation.Reservation) error
	Remove(ctx context.Context, id uuid.UUID) error
	LoadAll(ctx context.Context) ([]*reservation.Reservation, error)
}

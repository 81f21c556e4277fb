package queries

import (
	"context"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	ListAvailable(ctx context.Context, c resource.Constraint, w reservation.Window) ([]*ResourceView, error)
	ListForResourceOnDay(ctx context.Context, resourceID resource.ID, day time.Time) ([]*ReservationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByOccupant(ctx context.Context, ref string) ([]*ReservationView, error)
	ListResources(ctx context.Context, c resource.Constraint) ([]*ResourceView, error)
}

type reservationQueriesImpl struct {
	catalog shared.CatalogReader
	store   shared.ReservationStore
	dayLoc  *time.Location
}

func NewReservationQueries(catalog shared.CatalogReader, store shared.ReservationStore, dayLoc *time.Location) ReservationQueries {
	if dayLoc == nil {
		dayLoc = time.UTC
	}
	return &reservationQueriesImpl{catalog: catalog, store: store, dayLoc: dayLoc}
}

// ListAvailable reports the resources that would accept w right now. The
// answer is a snapshot and may be stale by the time the caller reserves.
func (q *reservationQueriesImpl) ListAvailable(_ context.Context, c resource.Constraint, w reservation.Window) ([]*ResourceView, error) {
	if w.IsZero() {
		return nil, errs.Mark(reservation.ErrZeroStart, errs.ErrInvalidRequest)
	}

	var out []*ResourceView
	for _, res := range q.catalog.ListByConstraint(c) {
		if res.IsOccupancy() != w.IsOpen() {
			continue
		}
		existing := q.store.FindByResourceWindow(res.ID(), w)
		if reservation.IsFree(res.Mode(), w, existing) {
			out = append(out, NewResourceView(res))
		}
	}
	return out, nil
}

// ListForResourceOnDay returns the reservations of one resource intersecting
// the calendar day of day, in start order.
func (q *reservationQueriesImpl) ListForResourceOnDay(_ context.Context, resourceID resource.ID, day time.Time) ([]*ReservationView, error) {
	res, err := q.catalog.Get(resourceID)
	if err != nil {
		return nil, err
	}

	found := q.store.FindByResourceWindow(res.ID(), reservation.DayWindow(day, q.dayLoc))
	out := make([]*ReservationView, 0, len(found))
	for _, r := range found {
		out = append(out, NewReservationView(r, res))
	}
	return out, nil
}

func (q *reservationQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*ReservationView, error) {
	r, ok := q.store.Get(id)
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	return NewReservationView(r, q.resourceOf(r)), nil
}

func (q *reservationQueriesImpl) ListByOccupant(_ context.Context, ref string) ([]*ReservationView, error) {
	found := q.store.ListByOccupant(ref)
	out := make([]*ReservationView, 0, len(found))
	for _, r := range found {
		out = append(out, NewReservationView(r, q.resourceOf(r)))
	}
	return out, nil
}

func (q *reservationQueriesImpl) ListResources(_ context.Context, c resource.Constraint) ([]*ResourceView, error) {
	all := q.catalog.ListByConstraint(c)
	out := make([]*ResourceView, 0, len(all))
	for _, r := range all {
		out = append(out, NewResourceView(r))
	}
	return out, nil
}

func (q *reservationQueriesImpl) resourceOf(r *reservation.Reservation) *resource.Resource {
	res, err := q.catalog.Get(r.ResourceID())
	if err != nil {
		return nil
	}
	return res
}

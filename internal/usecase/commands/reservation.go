package commands

import (
	"context"
	"log/slog"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/domain/selection"
	"reservation-engine/internal/infra/locks"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// ResourceLocks hands out the per-resource guard that serializes the
// check-then-commit sequence.
type ResourceLocks interface {
	Acquire(ctx context.Context, h resource.Handle) (*locks.Guard, error)
}

type ReserveRequest struct {
	Constraint resource.Constraint
	Window     reservation.Window
	Occupants  []string
	// ResourceID pins the request to one resource instead of letting the
	// policy choose. It must still satisfy Constraint.
	ResourceID resource.ID
	// ScanCandidates moves on to the policy's next choice when the chosen
	// resource turns out to be taken. Running out of candidates is ErrNoCapacity.
	ScanCandidates bool
}

type ReservationCommands interface {
	Reserve(ctx context.Context, req ReserveRequest) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

// Deps is shared by every service flavor. All flavors must be built over the
// same catalog, store and locks.
type Deps struct {
	Catalog  shared.CatalogReader
	Store    shared.ReservationStore
	Locks    ResourceLocks
	Backend  shared.PersistenceBackend
	Notifier shared.NotificationSink
	Clock    clock.Clock
	Logger   *slog.Logger
}

type ReservationService struct {
	name     string
	policy   selection.Policy
	catalog  shared.CatalogReader
	store    shared.ReservationStore
	locks    ResourceLocks
	backend  shared.PersistenceBackend
	notifier shared.NotificationSink
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReservationService(name string, policy selection.Policy, deps Deps) *ReservationService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReservationService{
		name:     name,
		policy:   policy,
		catalog:  deps.Catalog,
		store:    deps.Store,
		locks:    deps.Locks,
		backend:  deps.Backend,
		notifier: deps.Notifier,
		clock:    deps.Clock,
		logger:   logger.With(slog.String("service", name)),
	}
}

func (s *ReservationService) Reserve(ctx context.Context, req ReserveRequest) (*reservation.Reservation, error) {
	if req.Window.IsZero() {
		return nil, errs.Mark(reservation.ErrZeroStart, errs.ErrInvalidRequest)
	}
	occupants, err := reservation.NewOccupants(req.Occupants)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	candidates, err := s.candidates(req)
	if err != nil {
		return nil, err
	}

	for {
		chosen := s.policy.Select(candidates, req.Constraint)
		if chosen == nil {
			s.logger.InfoContext(ctx, "reservation rejected",
				slog.String("reason", "no_capacity"),
				slog.Int("min_capacity", req.Constraint.MinCapacity),
				slog.Int("candidates", len(candidates)),
			)
			return nil, errs.ErrNoCapacity
		}

		created, err := s.commit(ctx, chosen, occupants, req.Window)
		if err != nil {
			if req.ScanCandidates && errs.Is(err, errs.ErrConflict) {
				candidates = without(candidates, chosen)
				continue
			}
			return nil, err
		}

		s.notifier.NotifyCreated(created.Occupants().Refs(), created)
		s.logger.InfoContext(ctx, "reservation committed",
			slog.String("reservation_id", created.ID().String()),
			slog.String("resource_id", chosen.ID().String()),
			slog.String("window", created.Window().String()),
		)
		return created, nil
	}
}

// candidates narrows the catalog to resources whose mode matches the shape of
// the window: bounded windows book timed resources, open windows occupy spots.
func (s *ReservationService) candidates(req ReserveRequest) ([]*resource.Resource, error) {
	var pool []*resource.Resource
	if req.ResourceID != "" {
		res, err := s.catalog.Get(req.ResourceID)
		if err != nil {
			return nil, err
		}
		pool = []*resource.Resource{res}
	} else {
		pool = s.catalog.ListByConstraint(req.Constraint)
	}

	out := pool[:0:0]
	for _, r := range pool {
		if r.IsOccupancy() == req.Window.IsOpen() {
			out = append(out, r)
		}
	}
	return out, nil
}

func without(rs []*resource.Resource, drop *resource.Resource) []*resource.Resource {
	out := make([]*resource.Resource, 0, len(rs))
	for _, r := range rs {
		if r.ID() != drop.ID() {
			out = append(out, r)
		}
	}
	return out
}

// commit runs the check and both writes under the chosen resource's guard.
func (s *ReservationService) commit(
	ctx context.Context,
	chosen *resource.Resource,
	occupants reservation.Occupants,
	window reservation.Window,
) (*reservation.Reservation, error) {
	guard, err := s.locks.Acquire(ctx, chosen.Handle())
	if err != nil {
		s.logger.WarnContext(ctx, "reservation rejected",
			slog.String("reason", "busy"),
			slog.String("resource_id", chosen.ID().String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	defer guard.Release()

	existing := s.store.FindByResourceWindow(chosen.ID(), window)
	if !reservation.IsFree(chosen.Mode(), window, existing) {
		s.logger.InfoContext(ctx, "reservation rejected",
			slog.String("reason", "conflict"),
			slog.String("resource_id", chosen.ID().String()),
			slog.String("window", window.String()),
		)
		return nil, errs.ErrConflict
	}

	r, err := reservation.NewReservation(chosen.ID(), occupants, window, s.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	if err := s.backend.Save(ctx, r); err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	s.store.Save(r)
	return r, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	current, ok := s.store.Get(id)
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	res, err := s.catalog.Get(current.ResourceID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrReservationNotFound)
	}

	canceled, err := s.release(ctx, res, id)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyCancelled(canceled.Occupants().Refs(), canceled)
	s.logger.InfoContext(ctx, "reservation canceled",
		slog.String("reservation_id", id.String()),
		slog.String("resource_id", res.ID().String()),
	)
	return canceled, nil
}

func (s *ReservationService) release(ctx context.Context, res *resource.Resource, id uuid.UUID) (*reservation.Reservation, error) {
	guard, err := s.locks.Acquire(ctx, res.Handle())
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	// A concurrent cancel may have won while we waited.
	current, ok := s.store.Get(id)
	if !ok {
		return nil, errs.ErrReservationNotFound
	}

	if err := s.backend.Remove(ctx, id); err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	s.store.Remove(id)

	if err := current.Cancel(s.clock.Now()); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *ReservationService) Name() string { return s.name }

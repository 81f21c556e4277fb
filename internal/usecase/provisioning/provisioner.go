// Package provisioning fills the catalog at startup and restores persisted
// reservations into the store.
package provisioning

import (
	"context"
	"fmt"
	"log/slog"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/shared"
)

type Inventory interface {
	Add(spec resource.Spec) (*resource.Resource, error)
}

type LockRegistrar interface {
	Register(h resource.Handle)
}

type Provisioner struct {
	inventory Inventory
	catalog   shared.CatalogReader
	locks     LockRegistrar
	store     shared.ReservationStore
	backend   shared.PersistenceBackend
	logger    *slog.Logger
}

func NewProvisioner(
	inventory Inventory,
	catalog shared.CatalogReader,
	locks LockRegistrar,
	store shared.ReservationStore,
	backend shared.PersistenceBackend,
	logger *slog.Logger,
) *Provisioner {
	return &Provisioner{
		inventory: inventory,
		catalog:   catalog,
		locks:     locks,
		store:     store,
		backend:   backend,
		logger:    logger,
	}
}

// SpecsFromConfig expands the catalog settings into resource specs: one room
// per CATALOG_ROOMS entry, then for every lot and level the configured spot
// mix, numbered per level as <lot>-L<level>-<seq>.
func SpecsFromConfig(cfg config.CatalogConfig) ([]resource.Spec, error) {
	rooms, err := config.ParsePairs(cfg.Rooms)
	if err != nil {
		return nil, errs.Wrap(err, "CATALOG_ROOMS")
	}
	lots, err := config.ParsePairs(cfg.Lots)
	if err != nil {
		return nil, errs.Wrap(err, "CATALOG_LOTS")
	}
	mix, err := config.ParsePairs(cfg.SpotsPerLevel)
	if err != nil {
		return nil, errs.Wrap(err, "CATALOG_SPOTS_PER_LEVEL")
	}

	specs := make([]resource.Spec, 0, len(rooms))
	for _, room := range rooms {
		specs = append(specs, resource.Spec{
			ID:       resource.ID(room.Name),
			Kind:     resource.KindRoom,
			Capacity: room.Count,
		})
	}

	for _, lot := range lots {
		for level := 1; level <= lot.Count; level++ {
			seq := 0
			for _, entry := range mix {
				kind, err := resource.ParseKind(entry.Name)
				if err != nil || !kind.IsSpot() {
					return nil, errs.Wrap(resource.ErrInvalidKind, "spot kind "+entry.Name)
				}
				for i := 0; i < entry.Count; i++ {
					seq++
					specs = append(specs, resource.Spec{
						ID:       resource.ID(fmt.Sprintf("%s-L%d-%03d", lot.Name, level, seq)),
						Kind:     kind,
						Capacity: 1,
						Level:    level,
					})
				}
			}
		}
	}
	return specs, nil
}

// Provision adds every spec to the catalog and gives it a lock slot.
func (p *Provisioner) Provision(specs []resource.Spec) error {
	for _, spec := range specs {
		res, err := p.inventory.Add(spec)
		if err != nil {
			return errs.Wrap(err, "failed to provision "+string(spec.ID))
		}
		p.locks.Register(res.Handle())
	}
	p.logger.Info("catalog provisioned", slog.Int("resources", len(specs)))
	return nil
}

// Restore loads persisted reservations into the store. Entries whose
// resource is no longer provisioned, or that collide with an entry already
// restored, are skipped with a warning.
func (p *Provisioner) Restore(ctx context.Context) (int, error) {
	loaded, err := p.backend.LoadAll(ctx)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrPersistenceFailed)
	}

	restored := 0
	for _, r := range loaded {
		res, err := p.catalog.Get(r.ResourceID())
		if err != nil {
			p.logger.Warn("skipping reservation for unknown resource",
				slog.String("reservation_id", r.ID().String()),
				slog.String("resource_id", r.ResourceID().String()),
			)
			continue
		}
		if !r.IsActive() {
			continue
		}
		existing := p.store.FindByResourceWindow(res.ID(), r.Window())
		if !reservation.IsFree(res.Mode(), r.Window(), existing) {
			p.logger.Warn("skipping conflicting reservation",
				slog.String("reservation_id", r.ID().String()),
				slog.String("resource_id", res.ID().String()),
				slog.String("window", r.Window().String()),
			)
			continue
		}
		p.store.Save(r)
		restored++
	}

	p.logger.Info("reservations restored", slog.Int("restored", restored), slog.Int("loaded", len(loaded)))
	return restored, nil
}

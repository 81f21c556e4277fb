package components

import (
	"context"
	"log/slog"

	"reservation-engine/internal/infra/catalog"
	"reservation-engine/internal/infra/locks"
	"reservation-engine/internal/infra/store"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/provisioning"
	"reservation-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		clock.NewRealClock,
		catalog.New,
		fx.Annotate(
			func(c *catalog.Catalog) *catalog.Catalog { return c },
			fx.As(new(shared.CatalogReader)),
			fx.As(new(provisioning.Inventory)),
		),
		NewLockRegistry,
		fx.Annotate(
			func(r *locks.Registry) *locks.Registry { return r },
			fx.As(new(commands.ResourceLocks)),
			fx.As(new(provisioning.LockRegistrar)),
		),
		store.NewMemoryStore,
		fx.Annotate(
			func(s *store.MemoryStore) *store.MemoryStore { return s },
			fx.As(new(shared.ReservationStore)),
		),
		provisioning.NewProvisioner,
	),
	fx.Invoke(RegisterProvisioning),
)

func NewLockRegistry(cfg config.Config, c *catalog.Catalog) *locks.Registry {
	return locks.NewRegistry(c.Len(), cfg.Engine.LockWaitTimeout)
}

// RegisterProvisioning seeds the catalog and restores persisted reservations
// before the HTTP server starts accepting requests.
func RegisterProvisioning(lc fx.Lifecycle, cfg config.Config, p *provisioning.Provisioner, logger *slog.Logger) error {
	specs, err := provisioning.SpecsFromConfig(cfg.Catalog)
	if err != nil {
		return err
	}
	if err := p.Provision(specs); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			restored, err := p.Restore(ctx)
			if err != nil {
				return err
			}
			logger.Info("engine ready", slog.Int("resources", len(specs)), slog.Int("restored", restored))
			return nil
		},
	})
	return nil
}

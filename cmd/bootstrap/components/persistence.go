package components

import (
	"context"
	"log/slog"

	"reservation-engine/internal/infra/notification"
	"reservation-engine/internal/infra/persistence"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ErrUnknownDriver = errs.New("unknown driver")

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewBackend,
		func(b persistence.Backend) shared.PersistenceBackend { return b },
		NewDeliverer,
		NewDispatcher,
		func(d *notification.Dispatcher) shared.NotificationSink { return d },
	),
)

func NewBackend(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (persistence.Backend, error) {
	var (
		backend persistence.Backend
		err     error
	)

	switch cfg.Persistence.Driver {
	case config.DriverMemory, "":
		backend = persistence.NewNopBackend()
	case config.DriverPostgres:
		if cfg.Persistence.AutoMigrate {
			if err := persistence.Migrate(context.Background(), pool, logger); err != nil {
				return nil, err
			}
		}
		backend = persistence.NewPostgresBackend(pool, logger)
	case config.DriverBadger:
		backend, err = persistence.OpenBadger(cfg.Persistence.BadgerDir, logger)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errs.Wrap(ErrUnknownDriver, "PERSISTENCE_DRIVER="+cfg.Persistence.Driver)
	}

	logger.Info("persistence backend ready", slog.String("driver", cfg.Persistence.Driver))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return backend.Close()
		},
	})
	return backend, nil
}

func NewDeliverer(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (notification.Deliverer, error) {
	switch cfg.Notification.Driver {
	case config.NotifyLog, "":
		return notification.NewLogDeliverer(logger), nil
	case config.NotifyOutbox:
		if cfg.Persistence.Driver != config.DriverPostgres && cfg.Persistence.AutoMigrate {
			if err := persistence.Migrate(context.Background(), pool, logger); err != nil {
				return nil, err
			}
		}
		return notification.NewOutboxDeliverer(pool, logger), nil
	default:
		return nil, errs.Wrap(ErrUnknownDriver, "NOTIFY_DRIVER="+cfg.Notification.Driver)
	}
}

func NewDispatcher(lc fx.Lifecycle, cfg config.Config, deliverer notification.Deliverer, clk clock.Clock, logger *slog.Logger) *notification.Dispatcher {
	d := notification.NewDispatcher(deliverer, clk, logger, cfg.Notification.QueueSize, cfg.Notification.Workers)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}

package bootstrap

import (
	"context"
	"log/slog"

	"reservation-engine/internal/infra/db"
	"reservation-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func needsPostgres(cfg config.Config) bool {
	return cfg.Persistence.Driver == config.DriverPostgres || cfg.Notification.Driver == config.NotifyOutbox
}

// NewDB connects only when a postgres-backed driver is configured; otherwise
// it provides a nil pool.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if !needsPostgres(cfg) {
		return nil, nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", slog.String("host", cfg.DB.Host), slog.String("db", cfg.DB.DBName))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

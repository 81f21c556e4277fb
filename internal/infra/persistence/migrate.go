package persistence

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"reservation-engine/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate applies every embedded schema file in name order. The files are
// written to be re-runnable.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	entries, err := fs.ReadDir(schemaFS, "schema")
	if err != nil {
		return errs.Wrap(err, "failed to read embedded schema")
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		body, err := fs.ReadFile(schemaFS, "schema/"+e.Name())
		if err != nil {
			return errs.Wrap(err, "failed to read "+e.Name())
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return errs.Wrap(err, "failed to apply "+e.Name())
		}
		logger.Info("schema applied", slog.String("file", e.Name()))
	}
	return nil
}

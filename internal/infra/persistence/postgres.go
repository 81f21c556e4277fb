package persistence

import (
	"context"
	"log/slog"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/db"
	"reservation-engine/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresBackend = "postgres"

const (
	upsertReservationSQL = `
INSERT INTO reservations (id, resource_id, start_at, end_at, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE
SET resource_id = EXCLUDED.resource_id,
    start_at    = EXCLUDED.start_at,
    end_at      = EXCLUDED.end_at,
    status      = EXCLUDED.status`

	deleteOccupantsSQL = `DELETE FROM reservation_occupants WHERE reservation_id = $1`

	deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`

	loadActiveSQL = `
SELECT r.id, r.resource_id, r.start_at, r.end_at, r.status, r.created_at,
       COALESCE(array_agg(o.occupant_ref ORDER BY o.position)
                FILTER (WHERE o.occupant_ref IS NOT NULL), '{}') AS occupants
FROM reservations r
LEFT JOIN reservation_occupants o ON o.reservation_id = r.id
WHERE r.status = $1
GROUP BY r.id
ORDER BY r.start_at, r.id`
)

// PostgresBackend mirrors reservations into two tables: the reservation row
// and its ordered occupant list.
type PostgresBackend struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresBackend(pool *pgxpool.Pool, logger *slog.Logger) *PostgresBackend {
	return &PostgresBackend{pool: pool, logger: logger}
}

func (b *PostgresBackend) Save(ctx context.Context, r *reservation.Reservation) error {
	err := db.WithDefaultRetry(ctx, b.pool, func(tx pgx.Tx) error {
		var end *time.Time
		if e, ok := r.Window().End(); ok {
			end = &e
		}
		if _, err := tx.Exec(ctx, upsertReservationSQL,
			pgUUID(r.ID()),
			r.ResourceID().String(),
			pgtype.Timestamptz{Time: r.Window().Start(), Valid: true},
			ptr.PgtypeFromTime(end),
			r.Status().String(),
			pgtype.Timestamptz{Time: r.CreatedAt(), Valid: true},
		); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, deleteOccupantsSQL, pgUUID(r.ID())); err != nil {
			return err
		}

		refs := r.Occupants().Refs()
		rows := make([][]any, len(refs))
		for i, ref := range refs {
			rows[i] = []any{pgUUID(r.ID()), int32(i), ref}
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"reservation_occupants"},
			[]string{"reservation_id", "position", "occupant_ref"},
			pgx.CopyFromRows(rows),
		)
		return err
	})
	if err != nil {
		return infra.WrapBackendErr(b.logger, postgresBackend, infra.KindDBFailure, "failed to save reservation", err)
	}
	return nil
}

func (b *PostgresBackend) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := b.pool.Exec(ctx, deleteReservationSQL, pgUUID(id)); err != nil {
		return infra.WrapBackendErr(b.logger, postgresBackend, infra.KindDBFailure, "failed to remove reservation", err)
	}
	return nil
}

func (b *PostgresBackend) LoadAll(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := b.pool.Query(ctx, loadActiveSQL, reservation.StatusConfirmed.String())
	if err != nil {
		return nil, infra.WrapBackendErr(b.logger, postgresBackend, infra.KindDBFailure, "failed to load reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		var (
			id         pgtype.UUID
			resourceID string
			start      pgtype.Timestamptz
			end        pgtype.Timestamptz
			status     string
			createdAt  pgtype.Timestamptz
			occupants  []string
		)
		if err := rows.Scan(&id, &resourceID, &start, &end, &status, &createdAt, &occupants); err != nil {
			return nil, infra.WrapBackendErr(b.logger, postgresBackend, infra.KindDBFailure, "failed to scan reservation row", err)
		}

		r, err := reconstruct(uuid.UUID(id.Bytes), resourceID, occupants, start.Time, ptr.TimeFromPgtype(end), status, createdAt.Time)
		if err != nil {
			return nil, infra.WrapBackendErr(b.logger, postgresBackend, infra.KindCodec, "failed to rebuild reservation", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapBackendErr(b.logger, postgresBackend, infra.KindDBFailure, "failed to iterate reservations", err)
	}
	return out, nil
}

// Close is a no-op; the pool belongs to the caller.
func (b *PostgresBackend) Close() error { return nil }

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

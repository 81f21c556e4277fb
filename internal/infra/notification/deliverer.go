package notification

import (
	"context"
	"log/slog"
	"strings"

	"reservation-engine/internal/infra"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deliverer performs the actual send. It may block and may fail; the
// dispatcher absorbs both.
type Deliverer interface {
	Deliver(ctx context.Context, ev Event) error
}

// LogDeliverer writes every event as a structured log line.
type LogDeliverer struct {
	logger *slog.Logger
}

func NewLogDeliverer(logger *slog.Logger) *LogDeliverer {
	return &LogDeliverer{logger: logger}
}

func (d *LogDeliverer) Deliver(ctx context.Context, ev Event) error {
	d.logger.InfoContext(ctx, "notify occupants",
		slog.String("event", string(ev.Kind)),
		slog.String("reservation_id", ev.ReservationID.String()),
		slog.String("resource_id", ev.ResourceID),
		slog.String("recipients", strings.Join(ev.Recipients, ",")),
		slog.Time("start", ev.Start),
	)
	return nil
}

const insertJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, 'queued')`

// OutboxDeliverer queues events in notification_jobs for an external sender.
type OutboxDeliverer struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOutboxDeliverer(pool *pgxpool.Pool, logger *slog.Logger) *OutboxDeliverer {
	return &OutboxDeliverer{pool: pool, logger: logger}
}

func (d *OutboxDeliverer) Deliver(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return infra.WrapBackendErr(d.logger, "outbox", infra.KindCodec, "failed to encode notification", err)
	}

	_, err = d.pool.Exec(ctx, insertJobSQL,
		string(ev.Kind),
		ev.ResourceID,
		payload,
		pgtype.Timestamptz{Time: ev.OccurredAt, Valid: true},
	)
	if err != nil {
		return infra.WrapBackendErr(d.logger, "outbox", infra.KindDBFailure, "failed to enqueue notification job", err)
	}
	return nil
}

package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/infra"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const badgerBackend = "badger"

var reservationPrefix = []byte("reservation/")

func reservationKey(id uuid.UUID) []byte {
	return append(append([]byte{}, reservationPrefix...), id.String()...)
}

// BadgerBackend keeps one JSON document per reservation in an embedded
// badger database.
type BadgerBackend struct {
	db     *badger.DB
	logger *slog.Logger
}

// OpenBadger opens (or creates) the database under dir. An empty dir runs
// badger purely in memory.
func OpenBadger(dir string, logger *slog.Logger) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{logger: logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, infra.WrapBackendErr(logger, badgerBackend, infra.KindDBFailure, "failed to open badger", err)
	}
	return &BadgerBackend{db: db, logger: logger}, nil
}

func (b *BadgerBackend) Save(_ context.Context, r *reservation.Reservation) error {
	data, err := json.Marshal(toRecord(r))
	if err != nil {
		return infra.WrapBackendErr(b.logger, badgerBackend, infra.KindCodec, "failed to encode reservation", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(reservationKey(r.ID()), data)
	})
	if err != nil {
		return b.wrap("failed to save reservation", err)
	}
	return nil
}

func (b *BadgerBackend) Remove(_ context.Context, id uuid.UUID) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(reservationKey(id))
	})
	if err != nil {
		return b.wrap("failed to remove reservation", err)
	}
	return nil
}

func (b *BadgerBackend) LoadAll(ctx context.Context) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = reservationPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(reservationPrefix); it.ValidForPrefix(reservationPrefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			var rec record
			if err := json.Unmarshal(value, &rec); err != nil {
				return infra.WrapBackendErr(b.logger, badgerBackend, infra.KindCodec,
					"failed to decode "+string(it.Item().Key()), err)
			}
			r, err := fromRecord(rec)
			if err != nil {
				return err
			}
			if r.IsActive() {
				out = append(out, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, b.wrap("failed to load reservations", err)
	}
	return out, nil
}

// Get is used by maintenance tooling and tests to inspect a stored document.
func (b *BadgerBackend) Get(id uuid.UUID) (*reservation.Reservation, error) {
	var rec record
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(reservationKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &rec); err != nil {
				return infra.WrapBackendErr(b.logger, badgerBackend, infra.KindCodec, "failed to decode "+id.String(), err)
			}
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, infra.WrapBackendErr(nil, badgerBackend, infra.KindNotFound, "reservation not stored", err)
	}
	if err != nil {
		return nil, b.wrap("failed to read reservation", err)
	}
	return fromRecord(rec)
}

func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

// wrap keeps an error that is already a BackendError so its kind survives.
func (b *BadgerBackend) wrap(msg string, err error) error {
	var be infra.BackendError
	if errors.As(err, &be) {
		return err
	}
	kind := infra.KindDBFailure
	if errors.Is(err, badger.ErrDBClosed) {
		kind = infra.KindClosed
	}
	return infra.WrapBackendErr(b.logger, badgerBackend, kind, msg, err)
}

// badgerLogger routes badger's printf-style logs into slog. Info and debug
// chatter is demoted so compaction noise stays out of normal logs.
type badgerLogger struct {
	logger *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log(slog.LevelError, format, args...)
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log(slog.LevelWarn, format, args...)
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log(slog.LevelDebug, format, args...)
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log(slog.LevelDebug, format, args...)
}

func (l badgerLogger) log(level slog.Level, format string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Log(context.Background(), level, strings.TrimSpace(fmt.Sprintf(format, args...)), slog.String("component", badgerBackend))
}

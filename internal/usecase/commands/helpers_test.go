//go:build unit

package commands_test

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/infra/catalog"
	"reservation-engine/internal/infra/locks"
	"reservation-engine/internal/infra/persistence"
	"reservation-engine/internal/infra/store"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func at(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

func window(t *testing.T, from, to int) reservation.Window {
	t.Helper()
	w, err := reservation.NewWindow(at(from), at(to))
	require.NoError(t, err)
	return w
}

// engine wires the real in-memory collaborators the way bootstrap does.
type engine struct {
	catalog  *catalog.Catalog
	store    *store.MemoryStore
	locks    *locks.Registry
	clock    *clock.MockClock
	notifier *recordingSink
}

func newEngine(t *testing.T, specs ...resource.Spec) *engine {
	t.Helper()
	e := &engine{
		catalog:  catalog.New(),
		store:    store.NewMemoryStore(),
		locks:    locks.NewRegistry(len(specs), 0),
		clock:    clock.NewMockClock(at(-24)),
		notifier: &recordingSink{},
	}
	for _, s := range specs {
		r, err := e.catalog.Add(s)
		require.NoError(t, err)
		e.locks.Register(r.Handle())
	}
	return e
}

func (e *engine) deps() commands.Deps {
	return e.depsWith(persistence.NopBackend{}, e.notifier)
}

func (e *engine) depsWith(backend shared.PersistenceBackend, sink shared.NotificationSink) commands.Deps {
	return commands.Deps{
		Catalog:  e.catalog,
		Store:    e.store,
		Locks:    e.locks,
		Backend:  backend,
		Notifier: sink,
		Clock:    e.clock,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

func (e *engine) active(resourceID resource.ID) []*reservation.Reservation {
	return e.store.ListByResource(resourceID)
}

type notice struct {
	kind      string
	occupants []string
	id        string
}

type recordingSink struct {
	mu      sync.Mutex
	notices []notice
}

func (s *recordingSink) NotifyCreated(occupants []string, r *reservation.Reservation) {
	s.record("created", occupants, r)
}

func (s *recordingSink) NotifyCancelled(occupants []string, r *reservation.Reservation) {
	s.record("cancelled", occupants, r)
}

func (s *recordingSink) record(kind string, occupants []string, r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, notice{kind: kind, occupants: occupants, id: r.ID().String()})
}

func (s *recordingSink) kinds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.notices))
	for i, n := range s.notices {
		out[i] = n.kind
	}
	return out
}

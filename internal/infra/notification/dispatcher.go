package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/errs"
)

const deliverTimeout = 5 * time.Second

var ErrDispatcherStopped = errs.New("notification dispatcher stopped")

// Dispatcher is the NotificationSink handed to the reservation services.
// Notify calls only enqueue; a fixed pool of workers delivers. A full queue
// drops the event with a warning rather than stall a commit.
type Dispatcher struct {
	deliverer Deliverer
	clock     clock.Clock
	logger    *slog.Logger
	workers   int

	mu      sync.RWMutex
	queue   chan Event
	closed  bool
	started bool
	wg      sync.WaitGroup

	delivered atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

func NewDispatcher(deliverer Deliverer, clk clock.Clock, logger *slog.Logger, queueSize, workers int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &Dispatcher{
		deliverer: deliverer,
		clock:     clk,
		logger:    logger,
		workers:   workers,
		queue:     make(chan Event, queueSize),
	}
}

func (d *Dispatcher) NotifyCreated(occupants []string, r *reservation.Reservation) {
	d.enqueue(newEvent(EventCreated, occupants, r, d.clock.Now()))
}

func (d *Dispatcher) NotifyCancelled(occupants []string, r *reservation.Reservation) {
	d.enqueue(newEvent(EventCancelled, occupants, r, d.clock.Now()))
}

func (d *Dispatcher) enqueue(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped.Add(1)
		d.logger.Warn("notification dropped", slog.String("event", string(ev.Kind)), slog.Any("error", ErrDispatcherStopped))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.dropped.Add(1)
		d.logger.Warn("notification queue full, event dropped",
			slog.String("event", string(ev.Kind)),
			slog.String("reservation_id", ev.ReservationID.String()),
		)
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run(i)
	}
}

// Stop refuses new events and waits for queued ones to be delivered, or for
// ctx to end.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "notification drain interrupted")
	}
}

func (d *Dispatcher) run(worker int) {
	defer d.wg.Done()
	for ev := range d.queue {
		d.deliver(worker, ev)
	}
}

func (d *Dispatcher) deliver(worker int, ev Event) {
	defer func() {
		if rec := recover(); rec != nil {
			d.failed.Add(1)
			d.logger.Error("notification deliverer panicked",
				slog.Int("worker", worker),
				slog.String("event", string(ev.Kind)),
				slog.String("panic", fmt.Sprint(rec)),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	if err := d.deliverer.Deliver(ctx, ev); err != nil {
		d.failed.Add(1)
		d.logger.Error("notification delivery failed",
			slog.Int("worker", worker),
			slog.String("event", string(ev.Kind)),
			slog.String("reservation_id", ev.ReservationID.String()),
			slog.Any("error", err),
		)
		return
	}
	d.delivered.Add(1)
}

type Stats struct {
	Delivered int64 `json:"delivered"`
	Failed    int64 `json:"failed"`
	Dropped   int64 `json:"dropped"`
	Queued    int   `json:"queued"`
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Delivered: d.delivered.Load(),
		Failed:    d.failed.Load(),
		Dropped:   d.dropped.Load(),
		Queued:    len(d.queue),
	}
}

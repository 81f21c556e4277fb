// Package locks provides one mutual-exclusion slot per provisioned resource.
package locks

import (
	"context"
	"sync"
	"time"

	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/pkg/errs"
)

// slot is a binary semaphore; a channel lets acquisition observe ctx.
type slot struct {
	sem chan struct{}
}

func newSlot() *slot {
	return &slot{sem: make(chan struct{}, 1)}
}

// Registry is an arena of locks indexed by resource handle. Slots are created
// at registration (or on first reference) and never removed, so every Acquire
// for a handle contends on the same lock.
type Registry struct {
	mu      sync.RWMutex
	slots   []*slot
	timeout time.Duration
}

// NewRegistry pre-allocates size slots. A zero timeout waits for as long as
// the caller's context allows.
func NewRegistry(size int, timeout time.Duration) *Registry {
	if size < 0 {
		size = 0
	}
	r := &Registry{
		slots:   make([]*slot, size),
		timeout: timeout,
	}
	for i := range r.slots {
		r.slots[i] = newSlot()
	}
	return r
}

// Register makes sure a slot exists for h.
func (r *Registry) Register(h resource.Handle) {
	_ = r.slot(h)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

func (r *Registry) slot(h resource.Handle) *slot {
	r.mu.RLock()
	if int(h) < len(r.slots) {
		s := r.slots[h]
		r.mu.RUnlock()
		return s
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.slots) <= int(h) {
		r.slots = append(r.slots, newSlot())
	}
	return r.slots[h]
}

// Acquire blocks until the slot for h is held. It returns errs.ErrBusy when
// ctx ends or the registry timeout elapses first.
func (r *Registry) Acquire(ctx context.Context, h resource.Handle) (*Guard, error) {
	if h < 0 {
		return nil, errs.Wrap(errs.ErrResourceNotFound, "negative lock handle")
	}
	s := r.slot(h)

	// Fast path
	select {
	case s.sem <- struct{}{}:
		return &Guard{slot: s}, nil
	default:
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	select {
	case s.sem <- struct{}{}:
		return &Guard{slot: s}, nil
	case <-ctx.Done():
		return nil, errs.Mark(ctx.Err(), errs.ErrBusy)
	}
}

// TryAcquire takes the slot only if it is free right now.
func (r *Registry) TryAcquire(h resource.Handle) (*Guard, bool) {
	if h < 0 {
		return nil, false
	}
	s := r.slot(h)
	select {
	case s.sem <- struct{}{}:
		return &Guard{slot: s}, true
	default:
		return nil, false
	}
}

// Guard is a held slot. Release is safe to call more than once.
type Guard struct {
	slot *slot
	once sync.Once
}

func (g *Guard) Release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		<-g.slot.sem
	})
}

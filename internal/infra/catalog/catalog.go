// Package catalog is the in-memory inventory of bookable resources.
package catalog

import (
	"sync"

	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/pkg/errs"
)

var ErrDuplicateResource = errs.New("resource already provisioned")

// Catalog keeps resources in provisioning order. Each resource's handle is its
// slot index, so handles are dense and stable for the life of the process.
type Catalog struct {
	mu    sync.RWMutex
	slots []*resource.Resource
	byID  map[resource.ID]resource.Handle
}

func New() *Catalog {
	return &Catalog{
		byID: make(map[resource.ID]resource.Handle),
	}
}

// Add provisions spec in the next slot.
func (c *Catalog) Add(spec resource.Spec) (*resource.Resource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	handle := resource.Handle(len(c.slots))
	res, err := resource.NewResource(handle, spec)
	if err != nil {
		return nil, err
	}
	if _, exists := c.byID[res.ID()]; exists {
		return nil, errs.Wrap(ErrDuplicateResource, res.ID().String())
	}

	c.slots = append(c.slots, res)
	c.byID[res.ID()] = handle
	return res, nil
}

func (c *Catalog) Get(id resource.ID) (*resource.Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, ok := c.byID[id]
	if !ok {
		return nil, errs.ErrResourceNotFound
	}
	return c.slots[h], nil
}

func (c *Catalog) ByHandle(h resource.Handle) (*resource.Resource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if h < 0 || int(h) >= len(c.slots) {
		return nil, false
	}
	return c.slots[h], true
}

// ListByConstraint returns every resource satisfying cons in provisioning order.
func (c *Catalog) ListByConstraint(cons resource.Constraint) []*resource.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*resource.Resource, 0, len(c.slots))
	for _, r := range c.slots {
		if r.Satisfies(cons) {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) All() []*resource.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*resource.Resource, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}

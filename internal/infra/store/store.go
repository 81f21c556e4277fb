// Package store keeps the authoritative set of active reservations.
package store

import (
	"sort"
	"sync"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"

	"github.com/google/uuid"
)

type idSet map[uuid.UUID]struct{}

// MemoryStore indexes reservations by id, occupant and resource. A single
// RWMutex covers all three maps so they never disagree.
type MemoryStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*reservation.Reservation
	byOccupant map[string]idSet
	byResource map[resource.ID]idSet
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:       make(map[uuid.UUID]*reservation.Reservation),
		byOccupant: make(map[string]idSet),
		byResource: make(map[resource.ID]idSet),
	}
}

// Save upserts r by id.
func (s *MemoryStore) Save(r *reservation.Reservation) {
	if r == nil {
		return
	}
	c := r.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.byID[c.ID()]; ok {
		s.unindex(old)
	}
	s.byID[c.ID()] = c
	s.index(c)
}

func (s *MemoryStore) Get(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// FindByResourceWindow returns the reservations of resourceID intersecting w,
// ordered by start. An open w matches everything that has not ended before it starts.
func (s *MemoryStore) FindByResourceWindow(resourceID resource.ID, w reservation.Window) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byResource[resourceID]
	out := make([]*reservation.Reservation, 0, len(ids))
	for id := range ids {
		r := s.byID[id]
		if r.Window().Overlaps(w) {
			out = append(out, r.Clone())
		}
	}
	sortByStart(out)
	return out
}

// FindByOccupant prefers the occupant's open reservation and otherwise returns
// the one starting last.
func (s *MemoryStore) FindByOccupant(ref string) (*reservation.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *reservation.Reservation
	for id := range s.byOccupant[ref] {
		r := s.byID[id]
		switch {
		case best == nil:
			best = r
		case r.IsOpen() && !best.IsOpen():
			best = r
		case r.IsOpen() == best.IsOpen() && later(r, best):
			best = r
		}
	}
	if best == nil {
		return nil, false
	}
	return best.Clone(), true
}

func (s *MemoryStore) ListByOccupant(ref string) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byOccupant[ref])
}

func (s *MemoryStore) ListByResource(resourceID resource.ID) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byResource[resourceID])
}

// Remove deletes id from every index and reports whether it was present.
func (s *MemoryStore) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return false
	}
	s.unindex(r)
	delete(s.byID, id)
	return true
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *MemoryStore) collect(ids idSet) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(ids))
	for id := range ids {
		out = append(out, s.byID[id].Clone())
	}
	sortByStart(out)
	return out
}

// must hold s.mu for writing
func (s *MemoryStore) index(r *reservation.Reservation) {
	for _, ref := range r.Occupants().Refs() {
		set, ok := s.byOccupant[ref]
		if !ok {
			set = make(idSet)
			s.byOccupant[ref] = set
		}
		set[r.ID()] = struct{}{}
	}
	set, ok := s.byResource[r.ResourceID()]
	if !ok {
		set = make(idSet)
		s.byResource[r.ResourceID()] = set
	}
	set[r.ID()] = struct{}{}
}

// must hold s.mu for writing
func (s *MemoryStore) unindex(r *reservation.Reservation) {
	for _, ref := range r.Occupants().Refs() {
		if set, ok := s.byOccupant[ref]; ok {
			delete(set, r.ID())
			if len(set) == 0 {
				delete(s.byOccupant, ref)
			}
		}
	}
	if set, ok := s.byResource[r.ResourceID()]; ok {
		delete(set, r.ID())
		if len(set) == 0 {
			delete(s.byResource, r.ResourceID())
		}
	}
}

func later(a, b *reservation.Reservation) bool {
	as, bs := a.Window().Start(), b.Window().Start()
	if !as.Equal(bs) {
		return as.After(bs)
	}
	return a.CreatedAt().After(b.CreatedAt())
}

func sortByStart(rs []*reservation.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		si, sj := rs[i].Window().Start(), rs[j].Window().Start()
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return rs[i].ID().String() < rs[j].ID().String()
	})
}

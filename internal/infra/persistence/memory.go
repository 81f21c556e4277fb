package persistence

import (
	"context"

	"reservation-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

// NopBackend keeps nothing beyond the in-memory store. It is the default when
// no durable driver is configured.
type NopBackend struct{}

func NewNopBackend() *NopBackend { return &NopBackend{} }

func (NopBackend) Save(context.Context, *reservation.Reservation) error { return nil }

func (NopBackend) Remove(context.Context, uuid.UUID) error { return nil }

func (NopBackend) LoadAll(context.Context) ([]*reservation.Reservation, error) { return nil, nil }

func (NopBackend) Close() error { return nil }

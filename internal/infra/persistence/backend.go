// Package persistence holds the durable mirrors of the reservation store.
package persistence

import (
	"reservation-engine/internal/usecase/shared"
)

// Backend is a PersistenceBackend that owns resources to release on shutdown.
type Backend interface {
	shared.PersistenceBackend
	Close() error
}

var (
	_ Backend = (*NopBackend)(nil)
	_ Backend = (*PostgresBackend)(nil)
	_ Backend = (*BadgerBackend)(nil)
)

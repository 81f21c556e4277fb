package errs

import "errors"

// Rejections returned by the reservation engine. All of them are routine
// outcomes the caller is expected to branch on with errors.Is.
var (
	// Reserve
	ErrNoCapacity      = errors.New("no resource satisfies the constraint")
	ErrConflict        = errors.New("resource is not free for the requested window")
	ErrBusy            = errors.New("resource lock could not be acquired in time")
	ErrAlreadyOccupied = errors.New("occupant already holds an open reservation")

	// Lookup / cancel
	ErrReservationNotFound = errors.New("reservation not found")
	ErrResourceNotFound    = errors.New("resource not found")

	// Input
	ErrInvalidRequest = errors.New("invalid reservation request")

	// Collaborators
	ErrPersistenceFailed = errors.New("persistence backend operation failed")
)

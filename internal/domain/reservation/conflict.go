package reservation

import "reservation-engine/internal/domain/resource"

// IsFree reports whether candidate can be committed next to existing on a
// resource of the given mode. Canceled entries never conflict.
//
// Timed resources conflict on half-open overlap. Occupancy resources conflict
// while any existing reservation is still open.
func IsFree(mode resource.Mode, candidate Window, existing []*Reservation) bool {
	for _, ex := range existing {
		if ex == nil || !ex.IsActive() {
			continue
		}
		switch mode {
		case resource.ModeOccupancy:
			if ex.IsOpen() {
				return false
			}
		default:
			if candidate.Overlaps(ex.Window()) {
				return false
			}
		}
	}
	return true
}

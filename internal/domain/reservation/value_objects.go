package reservation

import (
	"fmt"
	"strings"
	"time"

	"reservation-engine/internal/pkg/errs"
)

var (
	ErrInvalidWindow    = errs.New("start time must be before end time")
	ErrZeroStart        = errs.New("start time is required")
	ErrNoOccupants      = errs.New("at least one occupant is required")
	ErrTooManyOccupants = errs.New("too many occupants")
	ErrEmptyOccupant    = errs.New("occupant reference cannot be empty")
	ErrOccupantTooLong  = errs.New("occupant reference is too long (max 255 characters)")
)

const (
	MaxOccupants         = 500
	MaxOccupantRefLength = 255
)

// Window is a half-open interval [start, end). An open window has no end and
// extends indefinitely; it is how occupancy-only resources are held.
type Window struct {
	start time.Time
	end   time.Time
	open  bool
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() {
		return Window{}, ErrZeroStart
	}
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func NewOpenWindow(start time.Time) (Window, error) {
	if start.IsZero() {
		return Window{}, ErrZeroStart
	}
	return Window{start: start, open: true}, nil
}

// DayWindow covers the calendar day containing t in loc.
func DayWindow(t time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return Window{start: start, end: start.AddDate(0, 0, 1)}
}

func (w Window) Start() time.Time {
	return w.start
}

// End reports the end instant and whether the window is bounded.
func (w Window) End() (time.Time, bool) {
	return w.end, !w.open
}

func (w Window) IsOpen() bool {
	return w.open
}

func (w Window) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero() && !w.open
}

// Overlaps reports half-open intersection; touching endpoints do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.startsBeforeEndOf(other) && other.startsBeforeEndOf(w)
}

func (w Window) startsBeforeEndOf(other Window) bool {
	if other.open {
		return true
	}
	return w.start.Before(other.end)
}

// Close bounds an open window at t. A close at or before start keeps the
// window non-empty by ending it one nanosecond after start.
func (w Window) Close(t time.Time) Window {
	if !w.open {
		return w
	}
	if !t.After(w.start) {
		t = w.start.Add(time.Nanosecond)
	}
	return Window{start: w.start, end: t}
}

func (w Window) Duration() (time.Duration, bool) {
	if w.open {
		return 0, false
	}
	return w.end.Sub(w.start), true
}

func (w Window) String() string {
	if w.open {
		return fmt.Sprintf("[%s,)", w.start.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Occupants is the ordered list of parties holding a reservation
// (attendee emails for a room, a vehicle id for a spot).
type Occupants struct {
	refs []string
}

// NewOccupants trims each reference and drops duplicates, keeping first occurrence order.
func NewOccupants(refs []string) (Occupants, error) {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return Occupants{}, ErrEmptyOccupant
		}
		if len(ref) > MaxOccupantRefLength {
			return Occupants{}, ErrOccupantTooLong
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	if len(out) == 0 {
		return Occupants{}, ErrNoOccupants
	}
	if len(out) > MaxOccupants {
		return Occupants{}, ErrTooManyOccupants
	}
	return Occupants{refs: out}, nil
}

func (o Occupants) Refs() []string {
	out := make([]string, len(o.refs))
	copy(out, o.refs)
	return out
}

func (o Occupants) Len() int {
	return len(o.refs)
}

func (o Occupants) Contains(ref string) bool {
	for _, r := range o.refs {
		if r == ref {
			return true
		}
	}
	return false
}

package request

import (
	"strings"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/pkg/errs"
)

const DayLayout = "2006-01-02"

type CreateReservationRequest struct {
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	Attendees  []string  `json:"attendees" binding:"required,min=1,max=500,dive,required,max=255"`
	Capacity   int       `json:"capacity" binding:"omitempty,min=0"`
	ResourceID string    `json:"resource_id,omitempty" binding:"omitempty,max=64"`
}

// AvailabilityQuery is bound from the query string. An omitted end asks for
// occupancy (open-ended) availability.
type AvailabilityQuery struct {
	Capacity int      `form:"capacity" binding:"omitempty,min=0"`
	Kind     []string `form:"kind"`
	Start    string   `form:"start"`
	End      string   `form:"end"`
}

func (q AvailabilityQuery) Constraint() (resource.Constraint, error) {
	c := resource.Constraint{MinCapacity: q.Capacity}
	for _, raw := range q.Kind {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			k, err := resource.ParseKind(part)
			if err != nil {
				return resource.Constraint{}, errs.Mark(err, errs.ErrInvalidRequest)
			}
			c.Kinds = append(c.Kinds, k)
		}
	}
	return c, nil
}

// Window defaults start to now.
func (q AvailabilityQuery) Window(now time.Time) (reservation.Window, error) {
	start := now
	if q.Start != "" {
		t, err := time.Parse(time.RFC3339, q.Start)
		if err != nil {
			return reservation.Window{}, errs.Mark(err, errs.ErrInvalidRequest)
		}
		start = t
	}

	var (
		w   reservation.Window
		err error
	)
	if q.End == "" {
		w, err = reservation.NewOpenWindow(start)
	} else {
		end, perr := time.Parse(time.RFC3339, q.End)
		if perr != nil {
			return reservation.Window{}, errs.Mark(perr, errs.ErrInvalidRequest)
		}
		w, err = reservation.NewWindow(start, end)
	}
	if err != nil {
		return reservation.Window{}, errs.Mark(err, errs.ErrInvalidRequest)
	}
	return w, nil
}

type DayQuery struct {
	Day string `form:"day" binding:"required"`
}

func (q DayQuery) Parse(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, q.Day, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidRequest)
	}
	return t, nil
}

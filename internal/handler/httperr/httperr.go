package httperr

import (
	"errors"
	"net/http"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, "", detail)
}

func abort(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// First match wins.
var engineErrors = []mapping{
	{errs.ErrPersistenceFailed, http.StatusInternalServerError, "persistence_failed", "Reservation could not be stored"},
	{errs.ErrInvalidRequest, http.StatusBadRequest, "invalid_request", "Invalid request"},
	{errs.ErrNoCapacity, http.StatusUnprocessableEntity, "no_capacity", "No resource satisfies the request"},
	{errs.ErrConflict, http.StatusConflict, "conflict", "Resource is already reserved for that window"},
	{errs.ErrAlreadyOccupied, http.StatusConflict, "already_occupied", "Occupant already holds an open reservation"},
	{errs.ErrBusy, http.StatusServiceUnavailable, "busy", "Resource is busy, retry later"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "reservation_not_found", "Reservation not found"},
	{errs.ErrResourceNotFound, http.StatusNotFound, "resource_not_found", "Resource not found"},
}

// AbortWithEngineError maps a reservation engine rejection to its HTTP
// status. Anything unrecognized is a 500.
func AbortWithEngineError(c *gin.Context, err error) {
	for _, m := range engineErrors {
		if errs.Is(err, m.target) {
			abort(c, m.status, err, m.message, m.code, detailFor(err, m.target))
			return
		}
	}
	abort(c, http.StatusInternalServerError, err, "Internal error", "internal", nil)
}

func detailFor(err, target error) any {
	if target != errs.ErrInvalidRequest {
		return nil
	}
	for _, cause := range []error{
		reservation.ErrInvalidWindow,
		reservation.ErrZeroStart,
		reservation.ErrNoOccupants,
		reservation.ErrTooManyOccupants,
		reservation.ErrEmptyOccupant,
		reservation.ErrOccupantTooLong,
	} {
		if errs.Is(err, cause) {
			return gin.H{"reason": cause.Error()}
		}
	}
	return nil
}

package api

import (
	"net/http"

	"reservation-engine/internal/domain/resource"
	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	meetings commands.MeetingUseCase
	q        queries.ReservationQueries
}

func NewReservationHandler(meetings commands.MeetingUseCase, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{meetings: meetings, q: q}
}

// @Summary Create reservation
// @Description Book a room for a time window. The smallest room seating every attendee is chosen unless resource_id pins one.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.meetings.Book(c.Request.Context(), commands.BookMeetingRequest{
		Start:       req.Start,
		End:         req.End,
		Attendees:   req.Attendees,
		MinCapacity: req.Capacity,
		RoomID:      resource.ID(req.ResourceID),
	})
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+created.ID().String())
	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	canceled, err := h.meetings.Cancel(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(canceled))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations of an occupant
// @Tags reservations
// @Produce json
// @Param id path string true "Occupant reference (attendee or vehicle id)"
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/occupants/{id}/reservations [get]
func (h *ReservationHandler) ListByOccupant(c *gin.Context) {
	views, err := h.q.ListByOccupant(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

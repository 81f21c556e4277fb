package api

import (
	"net/http"
	"time"

	"reservation-engine/internal/domain/resource"
	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	q      queries.ReservationQueries
	clock  clock.Clock
	dayLoc *time.Location
}

func NewResourceHandler(q queries.ReservationQueries, clk clock.Clock, dayLoc *time.Location) *ResourceHandler {
	if dayLoc == nil {
		dayLoc = time.UTC
	}
	return &ResourceHandler{q: q, clock: clk, dayLoc: dayLoc}
}

// @Summary List resources
// @Tags resources
// @Produce json
// @Param kind query string false "Comma separated kinds (room, motorcycle, compact, large)"
// @Param capacity query int false "Minimum capacity"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	cons, err := query.Constraint()
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}

	views, err := h.q.ListResources(c.Request.Context(), cons)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary List available resources
// @Description Resources free for the window. Omit end to ask for occupancy spots free from start on.
// @Tags resources
// @Produce json
// @Param capacity query int false "Minimum capacity"
// @Param kind query string false "Comma separated kinds"
// @Param start query string false "RFC3339 start, defaults to now"
// @Param end query string false "RFC3339 end"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/resources/available [get]
func (h *ResourceHandler) Available(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	cons, err := query.Constraint()
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	window, err := query.Window(h.clock.Now())
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}

	views, err := h.q.ListAvailable(c.Request.Context(), cons, window)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary Reservations of a resource on one day
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param day query string true "Day as YYYY-MM-DD"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id}/reservations [get]
func (h *ResourceHandler) Schedule(c *gin.Context) {
	var query reqdto.DayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	day, err := query.Parse(h.dayLoc)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}

	views, err := h.q.ListForResourceOnDay(c.Request.Context(), resource.ID(c.Param("id")), day)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

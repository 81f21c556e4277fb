package api

import (
	"net/http"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	parking commands.ParkingUseCase
	q       queries.ReservationQueries
	clock   clock.Clock
}

func NewParkingHandler(parking commands.ParkingUseCase, q queries.ReservationQueries, clk clock.Clock) *ParkingHandler {
	return &ParkingHandler{parking: parking, q: q, clock: clk}
}

// @Summary Park a vehicle
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.ParkRequest true "Vehicle"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/parking/park [post]
func (h *ParkingHandler) Park(c *gin.Context) {
	var req reqdto.ParkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	vehicleType, err := resource.ParseVehicleType(req.VehicleType)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	parked, err := h.parking.Park(c.Request.Context(), req.VehicleID, vehicleType)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+parked.ID().String())
	c.JSON(http.StatusCreated, resdto.FromReservation(parked))
}

// @Summary Release the spot held by a vehicle
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.LeaveRequest true "Vehicle"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/parking/leave [post]
func (h *ParkingHandler) Leave(c *gin.Context) {
	var req reqdto.LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	left, err := h.parking.Leave(c.Request.Context(), req.VehicleID)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(left))
}

// @Summary Free spots for a vehicle type
// @Tags parking
// @Produce json
// @Param vehicle query string true "motorcycle, car or truck"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/parking/available [get]
func (h *ParkingHandler) Available(c *gin.Context) {
	var query reqdto.ParkingAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	vehicleType, err := resource.ParseVehicleType(query.Vehicle)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	window, err := reservation.NewOpenWindow(h.clock.Now())
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	views, err := h.q.ListAvailable(c.Request.Context(), resource.ConstraintForVehicle(vehicleType), window)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

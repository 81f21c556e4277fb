//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/handler/api"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/queries"
	"reservation-engine/tests/common/builder"
	"reservation-engine/tests/common/httptest"
	commandsmock "reservation-engine/tests/mock/commands"
	queriesmock "reservation-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParkingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockParking *commandsmock.MockParkingUseCase
	mockQueries *queriesmock.MockReservationQueries
	clock       *clock.MockClock
}

func (s *ParkingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockParking = commandsmock.NewMockParkingUseCase(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2030, 1, 7, 8, 0, 0, 0, time.UTC))
	h := api.NewParkingHandler(s.mockParking, s.mockQueries, s.clock)

	s.router.POST("/parking/park", h.Park)
	s.router.POST("/parking/leave", h.Leave)
	s.router.GET("/parking/available", h.Available)
}

func (s *ParkingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParkingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ParkingHandlerTestSuite))
}

func (s *ParkingHandlerTestSuite) TestPark() {
	url := "/parking/park"
	parked := builder.NewReservationBuilder().
		WithResource("A-L1-002").
		WithOpenWindow(s.clock.Now()).
		WithOccupants("CAR-1").
		MustBuildDomain()

	s.Run("success: 201 with an open-ended reservation", func() {
		s.mockParking.EXPECT().Park(gomock.Any(), "CAR-1", resource.VehicleCar).Return(parked, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"vehicle_id": "CAR-1", "vehicle_type": "car"})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("A-L1-002", body.ResourceID)
		s.Nil(body.End)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + parked.ID().String()})
	})

	s.Run("error: validation", func() {
		for name, body := range map[string]map[string]any{
			"missing vehicle id":   {"vehicle_type": "car"},
			"unknown vehicle type": {"vehicle_id": "CAR-1", "vehicle_type": "bus"},
			"vehicle id too long":  {"vehicle_id": strings.Repeat("v", 256), "vehicle_type": "car"},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: already parked is 409", func() {
		s.mockParking.EXPECT().Park(gomock.Any(), "CAR-1", resource.VehicleCar).Return(nil, errs.ErrAlreadyOccupied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"vehicle_id": "CAR-1", "vehicle_type": "car"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "already_occupied")
	})

	s.Run("error: full lot is 422", func() {
		s.mockParking.EXPECT().Park(gomock.Any(), "TRUCK-1", resource.VehicleTruck).Return(nil, errs.ErrNoCapacity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"vehicle_id": "TRUCK-1", "vehicle_type": "truck"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, "no_capacity")
	})
}

func (s *ParkingHandlerTestSuite) TestLeave() {
	url := "/parking/leave"

	s.Run("success: 200 with the closed reservation", func() {
		left := builder.NewReservationBuilder().WithOpenWindow(s.clock.Now()).WithOccupants("CAR-1").MustBuildDomain()
		s.Require().NoError(left.Cancel(s.clock.Now().Add(time.Hour)))
		s.mockParking.EXPECT().Leave(gomock.Any(), "CAR-1").Return(left, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"vehicle_id": "CAR-1"})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("canceled", body.Status)
		s.Require().NotNil(body.End)
		s.True(body.End.Equal(s.clock.Now().Add(time.Hour)))
	})

	s.Run("error: vehicle not parked", func() {
		s.mockParking.EXPECT().Leave(gomock.Any(), "CAR-9").Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"vehicle_id": "CAR-9"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "reservation_not_found")
	})

	s.Run("error: missing vehicle id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ParkingHandlerTestSuite) TestAvailable() {
	s.Run("success: queries an open window at now", func() {
		spot := builder.NewResourceBuilder().With(func(sp *resource.Spec) {
			*sp = builder.Spot("A-L1-003", resource.KindLarge)
		}).BuildView()

		s.mockQueries.EXPECT().
			ListAvailable(gomock.Any(), resource.ConstraintForVehicle(resource.VehicleTruck), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ resource.Constraint, w reservation.Window) ([]*queries.ResourceView, error) {
				s.True(w.IsOpen())
				s.True(w.Start().Equal(s.clock.Now()))
				return []*queries.ResourceView{spot}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parking/available?vehicle=truck", nil)

		var body []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("A-L1-003", body[0].ID)
	})

	s.Run("error: vehicle is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parking/available", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

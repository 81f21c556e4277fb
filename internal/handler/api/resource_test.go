//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/handler/api"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/infra/notification"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/queries"
	"reservation-engine/tests/common/builder"
	"reservation-engine/tests/common/httptest"
	queriesmock "reservation-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
	now         time.Time
	tokyo       *time.Location
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.now = time.Date(2030, 1, 7, 8, 0, 0, 0, time.UTC)
	s.tokyo = time.FixedZone("JST", 9*3600)
	h := api.NewResourceHandler(s.mockQueries, clock.NewMockClock(s.now), s.tokyo)

	s.router.GET("/resources", h.List)
	s.router.GET("/resources/available", h.Available)
	s.router.GET("/resources/:id/reservations", h.Schedule)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func (s *ResourceHandlerTestSuite) TestList() {
	room := builder.NewResourceBuilder().BuildView()

	s.Run("success: kinds may be repeated or comma separated", func() {
		want := resource.Constraint{MinCapacity: 2, Kinds: []resource.Kind{resource.KindRoom, resource.KindLarge, resource.KindCompact}}
		s.mockQueries.EXPECT().ListResources(gomock.Any(), want).
			Return([]*queries.ResourceView{room}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources?capacity=2&kind=room,large&kind=compact", nil)

		var body []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(resdto.ResourceResponse{ID: "R1", Name: "Room 1", Kind: "room", Mode: "timed", Capacity: 4}, body[0])
	})

	s.Run("error: unknown kind", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources?kind=hangar", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_request")
	})

	s.Run("error: negative capacity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources?capacity=-1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *ResourceHandlerTestSuite) TestAvailable() {
	s.Run("success: bounded window", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), resource.Constraint{MinCapacity: 3}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ resource.Constraint, w reservation.Window) ([]*queries.ResourceView, error) {
				end, bounded := w.End()
				s.True(bounded)
				s.True(w.Start().Equal(time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)))
				s.True(end.Equal(time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)))
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/resources/available?capacity=3&start=2030-01-07T09:00:00Z&end=2030-01-07T10:00:00Z", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("success: no bounds means an open window from now", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ resource.Constraint, w reservation.Window) ([]*queries.ResourceView, error) {
				s.True(w.IsOpen())
				s.True(w.Start().Equal(s.now))
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/available", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	for name, query := range map[string]string{
		"reversed window": "?start=2030-01-07T10:00:00Z&end=2030-01-07T09:00:00Z",
		"malformed start": "?start=9am",
		"malformed end":   "?end=later",
	} {
		s.Run("error: "+name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/available"+query, nil)
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_request")
		})
	}
}

func (s *ResourceHandlerTestSuite) TestSchedule() {
	s.Run("success: day is read in the configured zone", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().
			ListForResourceOnDay(gomock.Any(), resource.ID("R1"), time.Date(2030, 1, 7, 0, 0, 0, 0, s.tokyo)).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/R1/reservations?day=2030-01-07", nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID.String(), body[0].ID)
	})

	s.Run("error: unknown resource", func() {
		s.mockQueries.EXPECT().ListForResourceOnDay(gomock.Any(), resource.ID("R9"), gomock.Any()).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/R9/reservations?day=2030-01-07", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("error: day is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/R1/reservations", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: malformed day", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/R1/reservations?day=07/01/2030", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_request")
	})
}

type fixedCounter int

func (c fixedCounter) Len() int { return int(c) }

type fixedStats notification.Stats

func (f fixedStats) Stats() notification.Stats { return notification.Stats(f) }

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := api.NewHealthHandler(fixedCounter(12), fixedCounter(3), fixedStats{Delivered: 5, Dropped: 1})
	router.GET("/health", h.Check)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

	var body struct {
		Status        string             `json:"status"`
		Resources     int                `json:"resources"`
		Reservations  int                `json:"reservations"`
		Notifications notification.Stats `json:"notifications"`
	}
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 12, body.Resources)
	assert.Equal(t, 3, body.Reservations)
	assert.Equal(t, int64(5), body.Notifications.Delivered)
	assert.Equal(t, int64(1), body.Notifications.Dropped)
}

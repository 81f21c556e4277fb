//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/handler/api"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"
	"reservation-engine/tests/common/builder"
	"reservation-engine/tests/common/httptest"
	"reservation-engine/tests/common/testutil"
	commandsmock "reservation-engine/tests/mock/commands"
	queriesmock "reservation-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockMeetings *commandsmock.MockMeetingUseCase
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockMeetings = commandsmock.NewMockMeetingUseCase(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockMeetings, s.mockQueries)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.DELETE("/reservations/:id", s.handler.Cancel)
	s.router.GET("/occupants/:id/reservations", s.handler.ListByOccupant)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.MustBuildDomain()

	bound := []testCaseReservation{
		{name: "capacity boundary OK (0)", mutate: testutil.Field("capacity", 0), expectCode: http.StatusCreated},
		{name: "capacity boundary invalid (-1)", mutate: testutil.Field("capacity", -1), expectCode: http.StatusBadRequest},
		{name: "attendee length OK (255 chars)", mutate: testutil.Field("attendees", []string{strings.Repeat("a", 255)}), expectCode: http.StatusCreated},
		{name: "attendee length invalid (256 chars)", mutate: testutil.Field("attendees", []string{strings.Repeat("a", 256)}), expectCode: http.StatusBadRequest},
		{name: "resource id length invalid (65 chars)", mutate: testutil.Field("resource_id", strings.Repeat("r", 65)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReservation{
		{name: "missing field: start (required)", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end (required)", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: attendees (required)", mutate: testutil.Field("attendees", nil), expectCode: http.StatusBadRequest},
	}

	empty := []testCaseReservation{
		{name: "empty attendee list", mutate: testutil.Field("attendees", []string{}), expectCode: http.StatusBadRequest},
		{name: "empty attendee entry", mutate: testutil.Field("attendees", []string{"a", ""}), expectCode: http.StatusBadRequest},
		{name: "malformed start", mutate: testutil.Field("start", "tomorrow"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReservation{bound, missing, empty}

	s.Run("success: returns 201 Created with Location", func() {
		s.mockMeetings.EXPECT().Book(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.BookMeetingRequest) (*reservation.Reservation, error) {
				s.True(req.Start.Equal(b.Start))
				s.True(req.End.Equal(b.End))
				s.Equal(b.Occupants, req.Attendees)
				s.Zero(req.MinCapacity)
				s.Empty(req.RoomID)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body.ID)
		s.Equal("R1", body.ResourceID)
		s.Equal("confirmed", body.Status)
		s.NotNil(body.End)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + created.ID().String()})
	})

	s.Run("pinned room and capacity are passed through", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("resource_id", "R2"), testutil.Field("capacity", 6))
		s.mockMeetings.EXPECT().Book(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.BookMeetingRequest) (*reservation.Reservation, error) {
				s.Equal(6, req.MinCapacity)
				s.EqualValues("R2", req.RoomID)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockMeetings.EXPECT().Book(gomock.Any(), gomock.Any()).
							Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: maps engine rejections to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "no capacity",
				commandsError:  errs.ErrNoCapacity,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedCode:   "no_capacity",
			},
			{
				name:           "conflict",
				commandsError:  errs.ErrConflict,
				expectedStatus: http.StatusConflict,
				expectedCode:   "conflict",
			},
			{
				name:           "busy",
				commandsError:  errs.Mark(context.DeadlineExceeded, errs.ErrBusy),
				expectedStatus: http.StatusServiceUnavailable,
				expectedCode:   "busy",
			},
			{
				name:           "window rejected by domain",
				commandsError:  errs.Mark(reservation.ErrInvalidWindow, errs.ErrInvalidRequest),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "invalid_request",
			},
			{
				name:           "pinned room unknown",
				commandsError:  errs.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "resource_not_found",
			},
			{
				name:           "persistence failure",
				commandsError:  errs.Mark(errors.New("disk full"), errs.ErrPersistenceFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "persistence_failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "internal",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockMeetings.EXPECT().Book(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal(view.Occupants, response.Occupants)
		s.Equal(view.ResourceName, response.ResourceName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	r := builder.NewReservationBuilder().MustBuildDomain()
	url := "/reservations/" + r.ID().String()

	s.Run("success: returns the canceled reservation", func() {
		canceled := r.Clone()
		s.Require().NoError(canceled.Cancel(r.Window().Start()))
		s.mockMeetings.EXPECT().Cancel(gomock.Any(), r.ID()).Return(canceled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("canceled", response.Status)
	})

	s.Run("error: second cancel is 404", func() {
		s.mockMeetings.EXPECT().Cancel(gomock.Any(), r.ID()).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "reservation_not_found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+strings.Repeat("x", 36), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestListByOccupant
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListByOccupant() {
	views := []*builder.ReservationBuilder{
		builder.NewReservationBuilder(),
		builder.NewReservationBuilder().WithResource("R2"),
	}

	s.Run("success: returns every reservation of the occupant", func() {
		s.mockQueries.EXPECT().ListByOccupant(gomock.Any(), "alice@example.com").
			Return(toViews(views), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/occupants/alice@example.com/reservations", nil)

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListByOccupant(gomock.Any(), "nobody").Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/occupants/nobody/reservations", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func toViews(bs []*builder.ReservationBuilder) []*queries.ReservationView {
	out := make([]*queries.ReservationView, len(bs))
	for i, b := range bs {
		out[i] = b.BuildView()
	}
	return out
}

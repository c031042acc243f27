//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"booth-reservation/internal/domain/daterange"
	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/handler/api"
	resdto "booth-reservation/internal/handler/dto/response"
	"booth-reservation/internal/handler/middleware"
	"booth-reservation/internal/pkg/errs"
	"booth-reservation/internal/usecase/commands"
	"booth-reservation/internal/usecase/queries"
	"booth-reservation/internal/usecase/shared"
	"booth-reservation/tests/common/builder"
	"booth-reservation/tests/common/httptest"
	"booth-reservation/tests/common/testutil"
	commandsmock "booth-reservation/tests/mock/commands"
	queriesmock "booth-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actor        shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.actor = shared.Actor{UserID: uuid.New(), Role: shared.RoleRenter}

	s.router.POST("/reservations", fakeAuth(&s.actor), s.handler.Create)
	s.router.GET("/reservations/:id", fakeAuth(&s.actor), s.handler.Get)
	s.router.PATCH("/reservations/:id/status", fakeAuth(&s.actor), s.handler.UpdateStatus)
	s.router.POST("/reservations/:id/cancel", fakeAuth(&s.actor), s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// fakeAuth stands in for the JWT middleware and authenticates every request carrying a token as *actor.
func fakeAuth(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *actor)
		c.Next()
	}
}

// useCaseErr builds an error the way the use-case layer reports it: sentinel plus category.
func useCaseErr(sentinel, category error) error {
	return errs.Mark(errs.Wrap(sentinel, "handler test"), category)
}

type testCaseRequest struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	rb := builder.NewReservationBuilder()
	reqBody := rb.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with id and location", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ context.Context, in commands.CreateReservationInput, _ shared.Actor) (uuid.UUID, error) {
				s.Equal(rb.BoothID, in.BoothID)
				s.Equal("2025-10-01", in.StartDate)
				s.Equal("2025-10-02", in.EndDate)
				s.Equal(rb.TotalPrice, in.TotalPrice)
				return rb.ID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rb.ID.String(), body["id"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + rb.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseRequest{
			{name: "missing field: boothId", mutate: testutil.With("boothId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: startDate", mutate: testutil.With("startDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: endDate", mutate: testutil.With("endDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: totalPrice", mutate: testutil.With("totalPrice", nil), expectCode: http.StatusBadRequest},
			{name: "negative totalPrice", mutate: testutil.With("totalPrice", -1), expectCode: http.StatusBadRequest},
			{name: "note too long (501 chars)", mutate: testutil.With("note", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
			{name: "zero totalPrice OK", mutate: testutil.With("totalPrice", 0), expectCode: http.StatusCreated},
			{name: "note length OK (500 chars)", mutate: testutil.With("note", strings.Repeat("a", 500)), expectCode: http.StatusCreated},
			{name: "note omitted OK", mutate: testutil.With("note", nil), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(rb.ID, nil).Times(1)
				}
				requestMap := testutil.RequestMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 409 Conflict carries the conflicting reservation id", func() {
		existing := uuid.New()
		cause := &reservation.ConflictError{ReservationID: existing, Period: daterange.MustParse("2025-10-02", "2025-10-03")}
		err := errs.Mark(errs.Mark(cause, commands.ErrReservationConflict), errs.ErrConflict)
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusConflict, rec.Code)
		var body struct {
			Detail struct {
				ConflictingReservationID string `json:"conflictingReservationId"`
			} `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal(existing.String(), body.Detail.ConflictingReservationID)
	})

	s.Run("error: use-case failures map to their status", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"outside event", useCaseErr(commands.ErrOutsideEvent, errs.ErrRangeOutOfBounds), http.StatusUnprocessableEntity, "outside the event"},
			{"reversed range", useCaseErr(commands.ErrReversedRange, errs.ErrRangeOutOfBounds), http.StatusUnprocessableEntity, "start date is after end date"},
			{"malformed date", useCaseErr(commands.ErrInvalidInput, errs.ErrValidation), http.StatusBadRequest, "invalid input"},
			{"unknown booth", useCaseErr(commands.ErrBoothNotFound, errs.ErrNotFound), http.StatusNotFound, "booth not found"},
			{"role too low", useCaseErr(commands.ErrNotPermitted, errs.ErrForbidden), http.StatusForbidden, "not permitted"},
			{"storage failure", errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 200 with reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("pending", body.Status)
		s.Equal("2025-10-01", body.StartDate)
		s.Require().NotNil(body.Note)
		s.Equal(*view.Note, *body.Note)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when hidden or missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return((*queries.ReservationView)(nil), useCaseErr(queries.ErrReservationNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/status"

	s.Run("success: returns 204 for approved and declined", func() {
		for _, status := range []string{"approved", "declined"} {
			s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, status, s.actor).Return(nil).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": status}, "bearer-token")
			s.Equal(http.StatusNoContent, rec.Code, status)
		}
	})

	s.Run("error: 400 for statuses outside approved and declined", func() {
		for _, status := range []string{"cancelled", "pending", ""} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": status}, "bearer-token")
			s.Equal(http.StatusBadRequest, rec.Code, status)
		}
	})

	s.Run("error: 409 on illegal transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "approved", gomock.Any()).
			Return(useCaseErr(commands.ErrTransitionRejected, errs.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "approved"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot move to the requested status")
	})

	s.Run("error: 403 when caller does not manage the event", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "declined", gomock.Any()).
			Return(useCaseErr(commands.ErrNotPermitted, errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "declined"}, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id, s.actor).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id, gomock.Any()).
			Return(useCaseErr(commands.ErrTransitionRejected, errs.ErrInvalidTransition)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 404 for unknown reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id, gomock.Any()).
			Return(useCaseErr(commands.ErrReservationNotFound, errs.ErrNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

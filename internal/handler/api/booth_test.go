//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/handler/api"
	resdto "booth-reservation/internal/handler/dto/response"
	"booth-reservation/internal/pkg/errs"
	"booth-reservation/internal/usecase/queries"
	"booth-reservation/tests/common/builder"
	"booth-reservation/tests/common/httptest"
	queriesmock "booth-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BoothHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBoothQueries
	handler     *api.BoothHandler
}

func (s *BoothHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBoothQueries(s.mockCtrl)
	s.handler = api.NewBoothHandler(s.mockQueries)

	s.router.GET("/booths/:id/availability", s.handler.Availability)
	s.router.GET("/booths/:id/reservations", s.handler.Reservations)
}

func (s *BoothHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBoothHandlerSuite(t *testing.T) {
	suite.Run(t, new(BoothHandlerTestSuite))
}

func (s *BoothHandlerTestSuite) TestAvailability() {
	boothID := uuid.New()
	url := "/booths/" + boothID.String() + "/availability"

	s.Run("success: each availability value is rendered", func() {
		for _, a := range []string{"available", "reserved", "unavailable"} {
			s.mockQueries.EXPECT().GetAvailability(gomock.Any(), boothID).
				Return(&queries.AvailabilityView{BoothID: boothID, Availability: a}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

			var body resdto.AvailabilityResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(boothID, body.BoothID)
			s.Equal(a, body.Availability)
		}
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booths/42/availability", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 for unknown booth", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), boothID).
			Return((*queries.AvailabilityView)(nil), useCaseErr(queries.ErrBoothNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booth not found")
		s.Equal("booth not found", resp.Error.Message, "wrapping context stays in the logs")
	})

	s.Run("error: 500 hides storage failures", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), boothID).
			Return((*queries.AvailabilityView)(nil), errors.New("pool exhausted")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "pool exhausted")
	})
}

func (s *BoothHandlerTestSuite) TestReservations() {
	boothID := uuid.New()
	url := "/booths/" + boothID.String() + "/reservations"

	s.Run("success: reservations keep query order", func() {
		first := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.BoothID = boothID }).BuildView()
		second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.BoothID = boothID
			b.StartDate, b.EndDate = "2025-10-03", "2025-10-03"
			b.Status = reservation.StatusCancelled
			b.Note = ""
		}).BuildView()
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), boothID).
			Return([]*queries.ReservationView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(first.ID, body[0].ID)
		s.Equal("cancelled", body[1].Status)
		s.Nil(body[1].Note)
	})

	s.Run("success: empty booth renders an empty array", func() {
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), boothID).
			Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

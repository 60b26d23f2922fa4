//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"booking-core/internal/handler/api"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"
	"booking-core/tests/common/httptest"
	queriesmock "booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	handler := api.NewAvailabilityHandler(s.mockQueries)
	s.router.GET("/availability", handler.Search)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestSearch() {
	from := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	s.Run("success: 200 with priced rows", func() {
		rows := []*queries.AvailabilityRow{
			{RoomNumber: 101, RoomType: "ESTANDAR", StayCostCents: 16000},
			{RoomNumber: 201, RoomType: "JUNIOR", StayCostCents: 20000},
		}
		s.mockQueries.EXPECT().Search(gomock.Any(), from, to, "").Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?from=2026-03-10&to=2026-03-12", nil)

		var response []resdto.AvailabilityRowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(int32(101), response[0].RoomNumber)
		s.Equal(int64(20000), response[1].StayCostCents)
	})

	s.Run("success: 200 with empty list when everything is booked", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), from, to, "JUNIOR").Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?from=2026-03-10&to=2026-03-12&type=JUNIOR", nil)

		var response []resdto.AvailabilityRowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 for missing dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?from=2026-03-10", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "'to' date")
	})

	s.Run("error: 400 for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?from=10-03-2026&to=2026-03-12", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "'from' date")
	})

	s.Run("error: 422 for an inverted range", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), to, from, "").
			Return(nil, errs.Mark(errors.New("bad range"), errs.ErrInvalidStayRange)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?from=2026-03-12&to=2026-03-10", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Check-out must be after check-in")
	})

	s.Run("error: 500 for store failures", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), from, to, "").
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?from=2026-03-10&to=2026-03-12", nil)
		httptest.AssertPublicErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

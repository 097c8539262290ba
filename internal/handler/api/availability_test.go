//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"bakehouse/internal/handler/api"
	"bakehouse/internal/handler/middleware"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"
	"bakehouse/tests/common/httptest"
	mock_usecase "bakehouse/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *mock_usecase.MockAvailabilityUsecase
	tenantID         uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = mock_usecase.NewMockAvailabilityUsecase(s.mockCtrl)
	s.tenantID = uuid.New()

	handler := api.NewAvailabilityHandler(s.mockAvailability)
	s.router.GET("/api/availability/consulting", middleware.RequireTenant(), handler.ConsultingSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) get(query string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet,
		"/api/availability/consulting?"+query, nil,
		map[string]string{middleware.TenantHeader: s.tenantID.String()})
}

func (s *AvailabilityHandlerTestSuite) TestConsultingSlots() {
	bookingTypeID := uuid.New()

	s.Run("success: year and month expand to the whole month", func() {
		s.mockAvailability.EXPECT().ConsultingSlots(gomock.Any(), s.tenantID, bookingTypeID,
			clock.Date{Year: 2026, Month: 9, Day: 1},
			clock.Date{Year: 2026, Month: 9, Day: 30},
		).Return(usecase.ConsultingAvailability{BookingTypeID: bookingTypeID, DurationMinutes: 60}, nil)

		w := s.get("booking_type_id=" + bookingTypeID.String() + "&year=2026&month=9")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("success: february of a leap year ends on the 29th", func() {
		s.mockAvailability.EXPECT().ConsultingSlots(gomock.Any(), s.tenantID, bookingTypeID,
			clock.Date{Year: 2028, Month: 2, Day: 1},
			clock.Date{Year: 2028, Month: 2, Day: 29},
		).Return(usecase.ConsultingAvailability{BookingTypeID: bookingTypeID}, nil)

		w := s.get("booking_type_id=" + bookingTypeID.String() + "&year=2028&month=2")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("error: month out of range", func() {
		w := s.get("booking_type_id=" + bookingTypeID.String() + "&year=2026&month=13")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "month must be 1-12")
	})

	s.Run("error: missing year", func() {
		w := s.get("booking_type_id=" + bookingTypeID.String() + "&month=9")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "year")
	})

	s.Run("error: malformed booking type id", func() {
		w := s.get("booking_type_id=nope&year=2026&month=9")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "booking_type_id")
	})
}

//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/domain/booking"
	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"
	mock_usecase "bakehouse/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityUsecaseTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockSettings     *mock_usecase.MockSettingsRepo
	mockCalendar     *mock_usecase.MockCalendarRepo
	mockCommitments  *mock_usecase.MockCommitmentRepo
	mockBookingTypes *mock_usecase.MockBookingTypeRepo
	clk              *clock.MockClock
	uc               usecase.AvailabilityUsecase

	tenantID uuid.UUID
}

func (s *AvailabilityUsecaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSettings = mock_usecase.NewMockSettingsRepo(s.ctrl)
	s.mockCalendar = mock_usecase.NewMockCalendarRepo(s.ctrl)
	s.mockCommitments = mock_usecase.NewMockCommitmentRepo(s.ctrl)
	s.mockBookingTypes = mock_usecase.NewMockBookingTypeRepo(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.uc = usecase.NewAvailabilityUsecase(s.mockSettings, s.mockCalendar, s.mockCommitments, s.mockBookingTypes, s.clk)
	s.tenantID = uuid.New()
}

func (s *AvailabilityUsecaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAvailabilityUsecaseSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityUsecaseTestSuite))
}

func (s *AvailabilityUsecaseTestSuite) consultingType() *booking.BookingType {
	bt, err := booking.NewBookingType(booking.BookingTypeParams{
		TenantID:           s.tenantID,
		Name:               "Wedding consultation",
		DurationMinutes:    60,
		BufferAfterMinutes: 30,
		MaxBookingsPerDay:  2,
	})
	s.Require().NoError(err)
	return bt
}

func (s *AvailabilityUsecaseTestSuite) TestConsultingSlots() {
	from := clock.Date{Year: 2026, Month: 9, Day: 1}
	to := clock.Date{Year: 2026, Month: 9, Day: 30}

	s.Run("success: pending-holds-slot policy comes from tenant settings", func() {
		for _, countPending := range []bool{true, false} {
			bt := s.consultingType()
			cfg := schedule.DefaultTenantConfig()
			cfg.CountPendingAsCommitted = countPending

			s.mockBookingTypes.EXPECT().FindByID(gomock.Any(), s.tenantID, bt.ID()).Return(bt, nil)
			s.mockSettings.EXPECT().TenantConfig(gomock.Any(), s.tenantID).Return(cfg, nil)
			s.mockCalendar.EXPECT().LoadRules(gomock.Any(), s.tenantID, schedule.KindConsulting, from, to).
				Return(schedule.Rules{}, nil)
			s.mockCommitments.EXPECT().BookingCommitments(gomock.Any(), s.tenantID, from, to, countPending).
				Return(schedule.Commitments{}, nil)

			avail, err := s.uc.ConsultingSlots(context.Background(), s.tenantID, bt.ID(), from, to)
			s.Require().NoError(err)
			s.Equal(bt.ID(), avail.BookingTypeID)
			s.Equal(60, avail.DurationMinutes)
		}
	})

	s.Run("error: inactive booking type reads as not found", func() {
		bt := s.consultingType()
		s.Require().NoError(bt.Update(nil, nil, nil, nil, nil, nil, boolPtr(false)))

		s.mockBookingTypes.EXPECT().FindByID(gomock.Any(), s.tenantID, bt.ID()).Return(bt, nil)

		_, err := s.uc.ConsultingSlots(context.Background(), s.tenantID, bt.ID(), from, to)
		s.Error(err)
	})
}

func boolPtr(b bool) *bool { return &b }

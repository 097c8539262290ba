//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/usecase"
	mock_usecase "bakehouse/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MaintenanceUsecaseTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockNotifications *mock_usecase.MockNotificationRepo
	mockIdempotency   *mock_usecase.MockIdempotencyRepo
	mockSender        *mock_usecase.MockNotificationSender
	clk               *clock.MockClock
	uc                usecase.MaintenanceUsecase
}

func (s *MaintenanceUsecaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNotifications = mock_usecase.NewMockNotificationRepo(s.ctrl)
	s.mockIdempotency = mock_usecase.NewMockIdempotencyRepo(s.ctrl)
	s.mockSender = mock_usecase.NewMockNotificationSender(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.uc = usecase.NewMaintenanceUsecase(s.mockNotifications, s.mockIdempotency, s.mockSender, s.clk)
}

func (s *MaintenanceUsecaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMaintenanceUsecaseSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceUsecaseTestSuite))
}

func job(template string) repository.NotificationJob {
	return repository.NotificationJob{
		ID:          uuid.New(),
		TenantID:    uuid.New(),
		TemplateKey: template,
		Recipient:   "customer@example.com",
		Payload:     []byte(`{"order_number":"ORD-20260901-0001"}`),
	}
}

func (s *MaintenanceUsecaseTestSuite) TestDispatchNotifications() {
	now := s.clk.Now()

	s.Run("success: due jobs are claimed then delivered", func() {
		first, second := job(repository.NotifyOrderReceived), job(repository.NotifyPickupReminder)
		s.mockNotifications.EXPECT().DuePending(gomock.Any(), now, int32(50)).
			Return([]repository.NotificationJob{first, second}, nil)
		s.mockNotifications.EXPECT().MarkSent(gomock.Any(), first.ID, now).Return(true, nil)
		s.mockNotifications.EXPECT().MarkSent(gomock.Any(), second.ID, now).Return(true, nil)
		s.mockSender.EXPECT().Send(gomock.Any(), first).Return(nil)
		s.mockSender.EXPECT().Send(gomock.Any(), second).Return(nil)

		sent, err := s.uc.DispatchNotifications(context.Background(), 50)
		s.Require().NoError(err)
		s.Equal(2, sent)
	})

	s.Run("success: a job claimed by a concurrent sweep is skipped", func() {
		raced := job(repository.NotifyQuoteSent)
		s.mockNotifications.EXPECT().DuePending(gomock.Any(), now, int32(50)).
			Return([]repository.NotificationJob{raced}, nil)
		s.mockNotifications.EXPECT().MarkSent(gomock.Any(), raced.ID, now).Return(false, nil)

		sent, err := s.uc.DispatchNotifications(context.Background(), 50)
		s.Require().NoError(err)
		s.Equal(0, sent)
	})

	s.Run("success: one failed delivery does not stop the sweep", func() {
		failing, fine := job(repository.NotifyContractSent), job(repository.NotifyBookingConfirmed)
		s.mockNotifications.EXPECT().DuePending(gomock.Any(), now, int32(50)).
			Return([]repository.NotificationJob{failing, fine}, nil)
		s.mockNotifications.EXPECT().MarkSent(gomock.Any(), failing.ID, now).Return(true, nil)
		s.mockNotifications.EXPECT().MarkSent(gomock.Any(), fine.ID, now).Return(true, nil)
		s.mockSender.EXPECT().Send(gomock.Any(), failing).Return(errs.New("smtp down"))
		s.mockSender.EXPECT().Send(gomock.Any(), fine).Return(nil)

		sent, err := s.uc.DispatchNotifications(context.Background(), 50)
		s.Require().NoError(err)
		s.Equal(1, sent)
	})

	s.Run("error: listing failure surfaces", func() {
		s.mockNotifications.EXPECT().DuePending(gomock.Any(), now, int32(50)).
			Return(nil, errs.New("db down"))

		_, err := s.uc.DispatchNotifications(context.Background(), 50)
		s.Error(err)
	})
}

func (s *MaintenanceUsecaseTestSuite) TestPurgeIdempotencyKeys() {
	now := s.clk.Now()
	s.mockIdempotency.EXPECT().PurgeExpired(gomock.Any(), now).Return(int64(3), nil)

	purged, err := s.uc.PurgeIdempotencyKeys(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(3), purged)
}

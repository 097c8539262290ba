//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/payment"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"
	mock_payment "bakehouse/tests/mock/payment"
	mock_usecase "bakehouse/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderUsecaseTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockTx            *mock_usecase.MockTxRunner
	mockOrders        *mock_usecase.MockOrderRepo
	mockSettings      *mock_usecase.MockSettingsRepo
	mockCalendar      *mock_usecase.MockCalendarRepo
	mockCommitments   *mock_usecase.MockCommitmentRepo
	mockIdempotency   *mock_usecase.MockIdempotencyRepo
	mockNotifications *mock_usecase.MockNotificationRepo
	mockGateway       *mock_payment.MockGateway
	clk               *clock.MockClock
	uc                usecase.OrderUsecase

	tenantID uuid.UUID
}

func (s *OrderUsecaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTx = mock_usecase.NewMockTxRunner(s.mockCtrl)
	s.mockOrders = mock_usecase.NewMockOrderRepo(s.mockCtrl)
	s.mockSettings = mock_usecase.NewMockSettingsRepo(s.mockCtrl)
	s.mockCalendar = mock_usecase.NewMockCalendarRepo(s.mockCtrl)
	s.mockCommitments = mock_usecase.NewMockCommitmentRepo(s.mockCtrl)
	s.mockIdempotency = mock_usecase.NewMockIdempotencyRepo(s.mockCtrl)
	s.mockNotifications = mock_usecase.NewMockNotificationRepo(s.mockCtrl)
	s.mockGateway = mock_payment.NewMockGateway(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.tenantID = uuid.New()

	s.uc = usecase.NewOrderUsecase(
		s.mockTx, s.mockOrders, s.mockSettings, s.mockCalendar, s.mockCommitments,
		s.mockIdempotency, s.mockNotifications, s.mockGateway, s.clk,
	)
}

func (s *OrderUsecaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderUsecaseSuite(t *testing.T) {
	suite.Run(t, new(OrderUsecaseTestSuite))
}

func (s *OrderUsecaseTestSuite) expectTx(times int) {
	s.mockTx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, fn func(db.DBTX) error) error { return fn(nil) }).Times(times)
}

func (s *OrderUsecaseTestSuite) tenantConfig() schedule.TenantConfig {
	cfg := schedule.DefaultTenantConfig()
	cfg.DefaultLeadTimeDays = 2
	cfg.Prices = map[string]int64{"cookies": 4500}
	return cfg
}

// mondayRules opens 2026-09-07 (a Monday) from 09:00 to 12:00.
func mondayRules() schedule.Rules {
	return schedule.Rules{Windows: []schedule.Window{
		{Weekday: time.Monday, Start: clock.TimeOfDay(9 * 60), End: clock.TimeOfDay(12 * 60), IsActive: true},
	}}
}

func submitInput(t order.Type, pickup *clock.Date, at *clock.TimeOfDay) usecase.SubmitOrderInput {
	return usecase.SubmitOrderInput{
		IdempotencyKey: uuid.New(),
		OrderType:      t,
		Customer:       order.Customer{Name: "Grace Hopper", Email: "grace@example.com"},
		PickupDate:     pickup,
		PickupTime:     at,
	}
}

func datePtr(y int, m time.Month, d int) *clock.Date {
	v := clock.Date{Year: y, Month: m, Day: d}
	return &v
}

func todPtr(hour, minute int) *clock.TimeOfDay {
	v := clock.TimeOfDay(hour*60 + minute)
	return &v
}

func (s *OrderUsecaseTestSuite) TestSubmit() {
	monday := datePtr(2026, time.September, 7)
	tenAM := todPtr(10, 0)

	s.Run("success: fixed-price order is created and redirected to checkout", func() {
		in := submitInput(order.TypeCookies, monday, tenAM)

		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), s.tenantID, in.IdempotencyKey, gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.mockSettings.EXPECT().TenantConfig(gomock.Any(), s.tenantID).Return(s.tenantConfig(), nil)
		s.mockCalendar.EXPECT().
			LoadRules(gomock.Any(), s.tenantID, schedule.KindBakery, *monday, *monday).
			Return(mondayRules(), nil)
		s.mockCommitments.EXPECT().
			PickupCommitments(gomock.Any(), s.tenantID, *monday, *monday, false).
			Return(schedule.Commitments{}, nil)

		s.expectTx(2) // create + attach checkout session
		s.mockOrders.EXPECT().NextSequence(gomock.Any(), gomock.Nil(), s.tenantID, gomock.Any()).Return(7, nil)
		s.mockOrders.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
		s.mockIdempotency.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Nil(), s.tenantID, in.IdempotencyKey, gomock.Any()).
			Return(nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), s.tenantID, repository.NotifyOrderReceived,
				"grace@example.com", gomock.Any(), gomock.Any()).
			Return(nil)
		s.mockGateway.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(payment.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil)
		s.mockOrders.EXPECT().SetCheckoutSession(gomock.Any(), gomock.Nil(), gomock.Any(), "cs_1").Return(nil)

		result, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.NoError(err)
		s.False(result.Replayed)
		s.Equal("https://pay.example/cs_1", result.CheckoutURL)
		s.Equal(order.StatusPendingPayment, result.Order.Status())
		s.Equal(int64(4500), *result.Order.TotalAmount())
	})

	s.Run("success: wedding inquiry skips pricing and checkout", func() {
		in := submitInput(order.TypeWedding, nil, nil)
		in.EventDate = datePtr(2027, time.June, 12)

		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), s.tenantID, in.IdempotencyKey, gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.mockSettings.EXPECT().TenantConfig(gomock.Any(), s.tenantID).Return(s.tenantConfig(), nil)
		s.expectTx(1)
		s.mockOrders.EXPECT().NextSequence(gomock.Any(), gomock.Nil(), s.tenantID, gomock.Any()).Return(1, nil)
		s.mockOrders.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
		s.mockIdempotency.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Nil(), s.tenantID, in.IdempotencyKey, gomock.Any()).
			Return(nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), s.tenantID, repository.NotifyOrderReceived,
				gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.NoError(err)
		s.Equal(order.StatusInquiry, result.Order.Status())
		s.Empty(result.CheckoutURL)
	})

	s.Run("success: reused key with the same body replays the original order", func() {
		in := submitInput(order.TypeCookies, monday, tenAM)
		existing := stubOrder(order.TypeCookies, order.StatusPendingPayment)
		existingID := existing.ID()

		var claimedHash string
		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), s.tenantID, in.IdempotencyKey, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, hash string, _ time.Time) (bool, error) {
				claimedHash = hash
				return false, nil
			})
		s.mockIdempotency.EXPECT().
			Get(gomock.Any(), s.tenantID, in.IdempotencyKey).
			DoAndReturn(func(_ any, _, _ uuid.UUID) (*repository.IdempotencyRecord, error) {
				return &repository.IdempotencyRecord{
					Status:      repository.IdempotencyCompleted,
					RequestHash: claimedHash,
					ResultID:    &existingID,
				}, nil
			})
		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, existingID).Return(existing, nil)

		result, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.NoError(err)
		s.True(result.Replayed)
		s.Equal(existingID, result.Order.ID())
	})

	s.Run("error: reused key with a different body is rejected", func() {
		in := submitInput(order.TypeCookies, monday, tenAM)

		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), s.tenantID, in.IdempotencyKey, gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.mockIdempotency.EXPECT().
			Get(gomock.Any(), s.tenantID, in.IdempotencyKey).
			Return(&repository.IdempotencyRecord{Status: repository.IdempotencyCompleted, RequestHash: "different"}, nil)

		_, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.ErrorIs(err, usecase.ErrIdempotencyMismatch)
	})

	s.Run("error: concurrent duplicate is told to retry later", func() {
		in := submitInput(order.TypeCookies, monday, tenAM)

		var claimedHash string
		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), s.tenantID, in.IdempotencyKey, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, hash string, _ time.Time) (bool, error) {
				claimedHash = hash
				return false, nil
			})
		s.mockIdempotency.EXPECT().
			Get(gomock.Any(), s.tenantID, in.IdempotencyKey).
			DoAndReturn(func(_ any, _, _ uuid.UUID) (*repository.IdempotencyRecord, error) {
				return &repository.IdempotencyRecord{Status: repository.IdempotencyProcessing, RequestHash: claimedHash}, nil
			})

		_, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.ErrorIs(err, usecase.ErrIdempotencyInFlight)
	})

	s.Run("error: unpriced fixed type releases the idempotency claim", func() {
		in := submitInput(order.TypeCake, nil, nil)

		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), s.tenantID, in.IdempotencyKey, gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.mockSettings.EXPECT().TenantConfig(gomock.Any(), s.tenantID).Return(s.tenantConfig(), nil)
		s.mockIdempotency.EXPECT().Release(gomock.Any(), s.tenantID, in.IdempotencyKey).Return(nil)

		_, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.ErrorIs(err, usecase.ErrPriceNotConfigured)
	})

	s.Run("error: pickup inside the lead-time window", func() {
		in := submitInput(order.TypeCookies, datePtr(2026, time.September, 2), tenAM)

		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), s.tenantID, in.IdempotencyKey, gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.mockSettings.EXPECT().TenantConfig(gomock.Any(), s.tenantID).Return(s.tenantConfig(), nil)
		s.mockIdempotency.EXPECT().Release(gomock.Any(), s.tenantID, in.IdempotencyKey).Return(nil)

		_, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.ErrorIs(err, usecase.ErrLeadTimeViolation)
	})

	s.Run("error: requested time is not an offered slot", func() {
		in := submitInput(order.TypeCookies, monday, todPtr(8, 0))

		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), s.tenantID, in.IdempotencyKey, gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.mockSettings.EXPECT().TenantConfig(gomock.Any(), s.tenantID).Return(s.tenantConfig(), nil)
		s.mockCalendar.EXPECT().
			LoadRules(gomock.Any(), s.tenantID, schedule.KindBakery, *monday, *monday).
			Return(mondayRules(), nil)
		s.mockCommitments.EXPECT().
			PickupCommitments(gomock.Any(), s.tenantID, *monday, *monday, false).
			Return(schedule.Commitments{}, nil)
		s.mockIdempotency.EXPECT().Release(gomock.Any(), s.tenantID, in.IdempotencyKey).Return(nil)

		_, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.ErrorIs(err, usecase.ErrSlotUnavailable)
	})

	s.Run("error: invalid order type fails before claiming the key", func() {
		in := submitInput(order.Type("subscription"), monday, tenAM)

		_, err := s.uc.Submit(context.Background(), s.tenantID, in)
		s.ErrorIs(err, usecase.ErrUnknownOrderType)
	})
}

func (s *OrderUsecaseTestSuite) TestStaffActions() {
	s.Run("success: completing a confirmed order stamps completed_at", func() {
		o := stubOrder(order.TypeCookies, order.StatusConfirmed)

		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, o.ID()).Return(o, nil)
		s.expectTx(1)
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusConfirmed, order.StatusCompleted, gomock.Any()).
			Return(true, nil)
		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, o.ID()).Return(o, nil)

		_, err := s.uc.Complete(context.Background(), s.tenantID, o.ID())
		s.NoError(err)
	})

	s.Run("error: cancelling a completed order", func() {
		o := stubOrder(order.TypeCookies, order.StatusCompleted)
		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, o.ID()).Return(o, nil)

		_, err := s.uc.Cancel(context.Background(), s.tenantID, o.ID())
		s.ErrorIs(err, usecase.ErrInvalidTransition)
	})
}

func (s *OrderUsecaseTestSuite) TestSendBalanceInvoice() {
	total, deposit := int64(60000), int64(30000)

	balanceOrder := func(status order.Status) *order.Order {
		return order.ReconstructOrder(order.ReconstructOrderParams{
			ID:            uuid.New(),
			TenantID:      s.tenantID,
			OrderNumber:   "ORD-20260901-0002",
			Type:          order.TypeWedding,
			Status:        status,
			Customer:      order.Customer{Name: "Grace Hopper", Email: "grace@example.com"},
			TotalAmount:   &total,
			DepositAmount: &deposit,
		})
	}

	s.Run("success: invoices the outstanding balance", func() {
		o := balanceOrder(order.StatusDepositPaid)
		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, o.ID()).Return(o, nil)
		s.mockGateway.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p payment.InvoiceParams) (payment.Invoice, error) {
				s.Equal(int64(30000), p.AmountCents)
				s.Equal(payment.PurposeBalance, p.Purpose)
				return payment.Invoice{ID: "in_2", HostedURL: "https://pay.example/in_2"}, nil
			})
		s.expectTx(1)
		s.mockOrders.EXPECT().SetBalanceInvoice(gomock.Any(), gomock.Nil(), o.ID(), "in_2").Return(nil)
		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, o.ID()).Return(o, nil)

		_, err := s.uc.SendBalanceInvoice(context.Background(), s.tenantID, o.ID())
		s.NoError(err)
	})

	s.Run("error: only deposit_paid orders can be balance-invoiced", func() {
		o := balanceOrder(order.StatusPendingPayment)
		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, o.ID()).Return(o, nil)

		_, err := s.uc.SendBalanceInvoice(context.Background(), s.tenantID, o.ID())
		s.ErrorIs(err, usecase.ErrInvalidTransition)
	})
}

//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/payment"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"
	mock_usecase "bakehouse/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentUsecaseTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockTx            *mock_usecase.MockTxRunner
	mockOrders        *mock_usecase.MockOrderRepo
	mockContracts     *mock_usecase.MockContractRepo
	mockNotifications *mock_usecase.MockNotificationRepo
	clk               *clock.MockClock
	now               time.Time
	uc                usecase.PaymentUsecase
}

func (s *PaymentUsecaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTx = mock_usecase.NewMockTxRunner(s.mockCtrl)
	s.mockOrders = mock_usecase.NewMockOrderRepo(s.mockCtrl)
	s.mockContracts = mock_usecase.NewMockContractRepo(s.mockCtrl)
	s.mockNotifications = mock_usecase.NewMockNotificationRepo(s.mockCtrl)
	s.now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.clk = clock.NewMockClock(s.now)
	s.uc = usecase.NewPaymentUsecase(s.mockTx, s.mockOrders, s.mockContracts, s.mockNotifications, s.clk)
}

func (s *PaymentUsecaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentUsecaseSuite(t *testing.T) {
	suite.Run(t, new(PaymentUsecaseTestSuite))
}

// expectTx runs the transaction callback inline against a nil DBTX so the
// repository expectations inside it fire.
func (s *PaymentUsecaseTestSuite) expectTx() {
	s.mockTx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, fn func(db.DBTX) error) error { return fn(nil) }).Times(1)
}

func stubOrder(t order.Type, status order.Status) *order.Order {
	return order.ReconstructOrder(order.ReconstructOrderParams{
		ID:          uuid.New(),
		TenantID:    uuid.New(),
		OrderNumber: "20260901-003",
		Type:        t,
		Status:      status,
		Customer:    order.Customer{Name: "Grace Hopper", Email: "grace@example.com"},
	})
}

func invoiceEvent(orderID uuid.UUID, purpose string) payment.Event {
	data, _ := json.Marshal(payment.InvoiceData{
		InvoiceID:  "in_1",
		OrderID:    orderID.String(),
		Purpose:    purpose,
		AmountPaid: 22500,
	})
	return payment.Event{ID: "evt_1", Type: payment.EventInvoicePaid, CreatedAt: 1756728000, Data: data}
}

func checkoutEvent(eventType, sessionID, orderRef string) payment.Event {
	data, _ := json.Marshal(payment.CheckoutSessionData{SessionID: sessionID, OrderID: orderRef})
	return payment.Event{ID: "evt_2", Type: eventType, CreatedAt: 1756728000, Data: data}
}

func (s *PaymentUsecaseTestSuite) TestDepositInvoice() {
	s.Run("success: moves a pending order to deposit_paid and notifies", func() {
		o := stubOrder(order.TypeWedding, order.StatusPendingPayment)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.expectTx()
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusPendingPayment, order.StatusDepositPaid,
				repository.StatusStamp{DepositPaidAt: &s.now}).
			Return(true, nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), o.TenantID(), repository.NotifyDepositReceived,
				"grace@example.com", gomock.Any(), s.now).
			Return(nil)

		s.NoError(s.uc.Process(context.Background(), invoiceEvent(o.ID(), payment.PurposeDeposit)))
	})

	s.Run("success: redelivered deposit is acknowledged without any write", func() {
		o := stubOrder(order.TypeWedding, order.StatusDepositPaid)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		s.NoError(s.uc.Process(context.Background(), invoiceEvent(o.ID(), payment.PurposeDeposit)))
	})

	s.Run("success: losing the conditional update race is not an error", func() {
		o := stubOrder(order.TypeWedding, order.StatusPendingPayment)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.expectTx()
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusPendingPayment, order.StatusDepositPaid, gomock.Any()).
			Return(false, nil)

		s.NoError(s.uc.Process(context.Background(), invoiceEvent(o.ID(), payment.PurposeDeposit)))
	})

	s.Run("success: deposit outrunning quote approval applies from inquiry", func() {
		o := stubOrder(order.TypeWedding, order.StatusInquiry)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.expectTx()
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusInquiry, order.StatusDepositPaid, gomock.Any()).
			Return(true, nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), o.TenantID(), repository.NotifyDepositReceived, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		s.NoError(s.uc.Process(context.Background(), invoiceEvent(o.ID(), payment.PurposeDeposit)))
	})
}

func (s *PaymentUsecaseTestSuite) TestBalanceInvoice() {
	s.Run("error: wedding balance is refused until the contract is signed", func() {
		o := stubOrder(order.TypeWedding, order.StatusDepositPaid)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.mockContracts.EXPECT().SignedForOrder(gomock.Any(), o.ID()).Return(false, nil)

		err := s.uc.Process(context.Background(), invoiceEvent(o.ID(), payment.PurposeBalance))
		s.ErrorIs(err, usecase.ErrContractNotSigned)
	})

	s.Run("success: signed contract lets the balance confirm the order", func() {
		o := stubOrder(order.TypeWedding, order.StatusDepositPaid)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.mockContracts.EXPECT().SignedForOrder(gomock.Any(), o.ID()).Return(true, nil)
		s.expectTx()
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusDepositPaid, order.StatusConfirmed,
				repository.StatusStamp{PaidAt: &s.now}).
			Return(true, nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), o.TenantID(), repository.NotifyBalanceReceived, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		s.NoError(s.uc.Process(context.Background(), invoiceEvent(o.ID(), payment.PurposeBalance)))
	})

	s.Run("success: non-wedding orders skip the contract gate", func() {
		o := stubOrder(order.TypeCake, order.StatusDepositPaid)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.expectTx()
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusDepositPaid, order.StatusConfirmed, gomock.Any()).
			Return(true, nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), o.TenantID(), repository.NotifyBalanceReceived, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		s.NoError(s.uc.Process(context.Background(), invoiceEvent(o.ID(), payment.PurposeBalance)))
	})

	s.Run("success: balance arriving before the deposit is acknowledged untouched", func() {
		o := stubOrder(order.TypeCake, order.StatusPendingPayment)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		s.NoError(s.uc.Process(context.Background(), invoiceEvent(o.ID(), payment.PurposeBalance)))
	})

	s.Run("error: unknown purpose", func() {
		o := stubOrder(order.TypeCake, order.StatusDepositPaid)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		err := s.uc.Process(context.Background(), invoiceEvent(o.ID(), "tip"))
		s.ErrorIs(err, usecase.ErrUnknownPurpose)
	})
}

func (s *PaymentUsecaseTestSuite) TestCheckout() {
	s.Run("success: completion confirms and stamps the payment time", func() {
		o := stubOrder(order.TypeCookies, order.StatusPendingPayment)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.expectTx()
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusPendingPayment, order.StatusConfirmed,
				repository.StatusStamp{PaidAt: &s.now}).
			Return(true, nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), o.TenantID(), repository.NotifyOrderConfirmed, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		ev := checkoutEvent(payment.EventCheckoutCompleted, "cs_1", o.ID().String())
		s.NoError(s.uc.Process(context.Background(), ev))
	})

	s.Run("success: expiry cancels with an order note and no notification", func() {
		o := stubOrder(order.TypeCookies, order.StatusPendingPayment)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.expectTx()
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusPendingPayment, order.StatusCancelled,
				repository.StatusStamp{AppendNote: "Checkout session expired before payment."}).
			Return(true, nil)

		ev := checkoutEvent(payment.EventCheckoutExpired, "cs_1", o.ID().String())
		s.NoError(s.uc.Process(context.Background(), ev))
	})

	s.Run("success: falls back to the session id when the reference is absent", func() {
		o := stubOrder(order.TypeCookies, order.StatusConfirmed)
		s.mockOrders.EXPECT().FindByCheckoutSession(gomock.Any(), "cs_9").Return(o, nil)

		// Already confirmed, so the redelivery is a no-op.
		ev := checkoutEvent(payment.EventCheckoutCompleted, "cs_9", "")
		s.NoError(s.uc.Process(context.Background(), ev))
	})

	s.Run("error: event with no order reference at all", func() {
		ev := checkoutEvent(payment.EventCheckoutCompleted, "", "")
		s.Error(s.uc.Process(context.Background(), ev))
	})
}

func (s *PaymentUsecaseTestSuite) TestUnhandledEventType() {
	ev := payment.Event{ID: "evt_9", Type: "customer.updated", Data: json.RawMessage(`{}`)}
	s.NoError(s.uc.Process(context.Background(), ev))
}

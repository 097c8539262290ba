//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/quote"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/payment"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"
	mock_payment "bakehouse/tests/mock/payment"
	mock_usecase "bakehouse/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteUsecaseTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockTx            *mock_usecase.MockTxRunner
	mockQuotes        *mock_usecase.MockQuoteRepo
	mockOrders        *mock_usecase.MockOrderRepo
	mockNotifications *mock_usecase.MockNotificationRepo
	mockGateway       *mock_payment.MockGateway
	clk               *clock.MockClock
	uc                usecase.QuoteUsecase

	tenantID uuid.UUID
}

func (s *QuoteUsecaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTx = mock_usecase.NewMockTxRunner(s.mockCtrl)
	s.mockQuotes = mock_usecase.NewMockQuoteRepo(s.mockCtrl)
	s.mockOrders = mock_usecase.NewMockOrderRepo(s.mockCtrl)
	s.mockNotifications = mock_usecase.NewMockNotificationRepo(s.mockCtrl)
	s.mockGateway = mock_payment.NewMockGateway(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.tenantID = uuid.New()

	s.uc = usecase.NewQuoteUsecase(s.mockTx, s.mockQuotes, s.mockOrders, s.mockNotifications, s.mockGateway, s.clk)
}

func (s *QuoteUsecaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteUsecaseSuite(t *testing.T) {
	suite.Run(t, new(QuoteUsecaseTestSuite))
}

func (s *QuoteUsecaseTestSuite) expectTx() *gomock.Call {
	return s.mockTx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, fn func(db.DBTX) error) error { return fn(nil) })
}

// sentQuote builds a sent 50%-deposit quote worth 60000 for the given order.
func (s *QuoteUsecaseTestSuite) sentQuote(orderID uuid.UUID, validUntil *time.Time) *quote.Quote {
	q, err := quote.NewQuote(s.tenantID, orderID, 50, validUntil, "")
	s.Require().NoError(err)
	s.Require().NoError(q.ReplaceLineItems([]quote.LineItemInput{
		{Description: "three-tier cake", Quantity: 1, UnitPrice: 60000},
	}))
	s.Require().NoError(q.Send())
	return q
}

func (s *QuoteUsecaseTestSuite) TestApproveByToken() {
	s.Run("success: winner approves, prices the order and gets the deposit invoice", func() {
		o := stubOrder(order.TypeWedding, order.StatusInquiry)
		q := s.sentQuote(o.ID(), nil)

		s.mockQuotes.EXPECT().FindByToken(gomock.Any(), q.ApprovalToken()).Return(q, nil)
		s.expectTx().Times(2) // conditional approval, then the conversion writes
		s.mockQuotes.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), q.ID(), quote.StatusSent, quote.StatusApproved, gomock.Any()).
			Return(true, nil)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.mockGateway.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p payment.InvoiceParams) (payment.Invoice, error) {
				s.Equal(int64(30000), p.AmountCents)
				s.Equal(payment.PurposeDeposit, p.Purpose)
				return payment.Invoice{ID: "in_1", HostedURL: "https://pay.example/in_1"}, nil
			})
		s.mockOrders.EXPECT().SetAmounts(gomock.Any(), gomock.Nil(), o.ID(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockOrders.EXPECT().SetDepositInvoice(gomock.Any(), gomock.Nil(), o.ID(), "in_1").Return(nil)
		s.mockOrders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), o.ID(), order.StatusInquiry, order.StatusPendingPayment, gomock.Any()).
			Return(true, nil)
		s.mockQuotes.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), q.ID(), quote.StatusApproved, quote.StatusConverted, nil).
			Return(true, nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), o.TenantID(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := s.uc.ApproveByToken(context.Background(), q.ApprovalToken())
		s.NoError(err)
		s.Equal("https://pay.example/in_1", result.DepositInvoiceURL)
		s.Equal(quote.StatusConverted, result.Quote.Status())
	})

	s.Run("success: a deposit webhook that already moved the order skips the order write", func() {
		o := stubOrder(order.TypeWedding, order.StatusDepositPaid)
		q := s.sentQuote(o.ID(), nil)

		s.mockQuotes.EXPECT().FindByToken(gomock.Any(), q.ApprovalToken()).Return(q, nil)
		s.expectTx().Times(2)
		s.mockQuotes.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), q.ID(), quote.StatusSent, quote.StatusApproved, gomock.Any()).
			Return(true, nil)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.mockGateway.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			Return(payment.Invoice{ID: "in_1", HostedURL: "https://pay.example/in_1"}, nil)
		s.mockOrders.EXPECT().SetAmounts(gomock.Any(), gomock.Nil(), o.ID(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockOrders.EXPECT().SetDepositInvoice(gomock.Any(), gomock.Nil(), o.ID(), "in_1").Return(nil)
		// No order.UpdateStatus expectation: quote_approved is a no-op from deposit_paid.
		s.mockQuotes.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), q.ID(), quote.StatusApproved, quote.StatusConverted, nil).
			Return(true, nil)
		s.mockNotifications.EXPECT().
			Enqueue(gomock.Any(), gomock.Nil(), o.TenantID(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := s.uc.ApproveByToken(context.Background(), q.ApprovalToken())
		s.NoError(err)
	})

	s.Run("error: second concurrent click loses the conditional update", func() {
		o := stubOrder(order.TypeWedding, order.StatusInquiry)
		q := s.sentQuote(o.ID(), nil)

		s.mockQuotes.EXPECT().FindByToken(gomock.Any(), q.ApprovalToken()).Return(q, nil)
		s.expectTx()
		s.mockQuotes.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), q.ID(), quote.StatusSent, quote.StatusApproved, gomock.Any()).
			Return(false, nil)

		_, err := s.uc.ApproveByToken(context.Background(), q.ApprovalToken())
		s.ErrorIs(err, usecase.ErrQuoteNotApproved)
	})

	s.Run("error: lapsed validity is persisted as expired", func() {
		past := s.clk.Now().Add(-time.Hour)
		q := s.sentQuote(uuid.New(), &past)

		s.mockQuotes.EXPECT().FindByToken(gomock.Any(), q.ApprovalToken()).Return(q, nil)
		s.expectTx()
		s.mockQuotes.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Nil(), q.ID(), quote.StatusSent, quote.StatusExpired, nil).
			Return(true, nil)

		_, err := s.uc.ApproveByToken(context.Background(), q.ApprovalToken())
		s.ErrorIs(err, quote.ErrExpired)
	})

	s.Run("error: draft quote cannot be approved", func() {
		q, err := quote.NewQuote(s.tenantID, uuid.New(), 50, nil, "")
		s.Require().NoError(err)

		s.mockQuotes.EXPECT().FindByToken(gomock.Any(), q.ApprovalToken()).Return(q, nil)

		_, err = s.uc.ApproveByToken(context.Background(), q.ApprovalToken())
		s.ErrorIs(err, quote.ErrNotSent)
	})
}

func (s *QuoteUsecaseTestSuite) TestCreate() {
	s.Run("error: fixed-price orders are not quotable", func() {
		o := stubOrder(order.TypeCookies, order.StatusPendingPayment)
		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, o.ID()).Return(o, nil)

		_, err := s.uc.Create(context.Background(), s.tenantID, usecase.CreateQuoteInput{OrderID: o.ID()})
		s.ErrorIs(err, usecase.ErrOrderNotQuotable)
	})

	s.Run("success: quote is persisted with computed totals", func() {
		o := stubOrder(order.TypeWedding, order.StatusInquiry)
		s.mockOrders.EXPECT().FindByIDForTenant(gomock.Any(), s.tenantID, o.ID()).Return(o, nil)
		s.expectTx()
		s.mockQuotes.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)

		q, err := s.uc.Create(context.Background(), s.tenantID, usecase.CreateQuoteInput{
			OrderID:           o.ID(),
			DepositPercentage: 50,
			LineItems: []quote.LineItemInput{
				{Description: "three-tier cake", Quantity: 1, UnitPrice: 60000},
			},
		})
		s.NoError(err)
		s.Equal(int64(60000), q.TotalAmount())
		s.Equal(int64(30000), q.DepositAmount())
		s.Equal(quote.StatusDraft, q.Status())
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/quote"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/payment"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotQuotable = errs.New("order type is not quote-priced")
	ErrQuoteNotApproved = errs.New("quote is not in an approvable state")
)

type CreateQuoteInput struct {
	OrderID           uuid.UUID
	DepositPercentage int
	ValidUntil        *time.Time
	Message           string
	LineItems         []quote.LineItemInput
}

type UpdateQuoteInput struct {
	DepositPercentage *int
	ValidUntil        *time.Time
	Message           *string
	LineItems         []quote.LineItemInput // nil leaves items unchanged
}

//go:generate mockgen -source=quotes.go -destination=../../tests/mock/usecase/quotes_mock.go -package=mock_usecase

// QuoteApprovalResult is what the customer sees after approving: the quote
// plus the hosted deposit invoice to pay.
type QuoteApprovalResult struct {
	Quote             *quote.Quote
	DepositInvoiceURL string
}

type QuoteUsecase interface {
	Create(ctx context.Context, tenantID uuid.UUID, in CreateQuoteInput) (*quote.Quote, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, in UpdateQuoteInput) (*quote.Quote, error)
	Send(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Get(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error)
	GetByOrder(ctx context.Context, tenantID, orderID uuid.UUID) (*quote.Quote, error)
	GetByToken(ctx context.Context, token uuid.UUID) (*quote.Quote, error)
	ApproveByToken(ctx context.Context, token uuid.UUID) (QuoteApprovalResult, error)
	ExpireStale(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type quoteInteractor struct {
	tx            TxRunner
	quotes        QuoteRepo
	orders        OrderRepo
	notifications NotificationRepo
	gateway       payment.Gateway
	clk           clock.Clock
}

func NewQuoteUsecase(
	tx TxRunner,
	quotes QuoteRepo,
	orders OrderRepo,
	notifications NotificationRepo,
	gateway payment.Gateway,
	clk clock.Clock,
) QuoteUsecase {
	return &quoteInteractor{
		tx:            tx,
		quotes:        quotes,
		orders:        orders,
		notifications: notifications,
		gateway:       gateway,
		clk:           clk,
	}
}

func (u *quoteInteractor) Create(ctx context.Context, tenantID uuid.UUID, in CreateQuoteInput) (*quote.Quote, error) {
	o, err := u.orders.FindByIDForTenant(ctx, tenantID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.OrderType().RequiresQuote() {
		return nil, ErrOrderNotQuotable
	}

	q, err := quote.NewQuote(tenantID, in.OrderID, in.DepositPercentage, in.ValidUntil, in.Message)
	if err != nil {
		return nil, err
	}
	if err := q.ReplaceLineItems(in.LineItems); err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return u.quotes.Create(ctx, tx, q)
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (u *quoteInteractor) Update(ctx context.Context, tenantID, id uuid.UUID, in UpdateQuoteInput) (*quote.Quote, error) {
	q, err := u.quotes.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := q.UpdateDetails(in.DepositPercentage, in.ValidUntil, in.Message); err != nil {
		return nil, err
	}
	if in.LineItems != nil {
		if err := q.ReplaceLineItems(in.LineItems); err != nil {
			return nil, err
		}
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return u.quotes.Save(ctx, tx, q)
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (u *quoteInteractor) Send(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	q, err := u.quotes.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := q.Send(); err != nil {
		return nil, err
	}

	o, err := u.orders.FindByIDForTenant(ctx, tenantID, q.OrderID())
	if err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		if err := u.quotes.Save(ctx, tx, q); err != nil {
			return err
		}
		return u.notifications.Enqueue(ctx, tx, tenantID, repository.NotifyQuoteSent, o.Customer().Email, map[string]string{
			"order_number":   o.OrderNumber(),
			"approval_token": q.ApprovalToken().String(),
		}, u.clk.Now())
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (u *quoteInteractor) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return u.quotes.Delete(ctx, tenantID, id)
}

func (u *quoteInteractor) Get(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	return u.quotes.FindByID(ctx, tenantID, id)
}

func (u *quoteInteractor) GetByOrder(ctx context.Context, tenantID, orderID uuid.UUID) (*quote.Quote, error) {
	return u.quotes.FindByOrderID(ctx, tenantID, orderID)
}

func (u *quoteInteractor) GetByToken(ctx context.Context, token uuid.UUID) (*quote.Quote, error) {
	return u.quotes.FindByToken(ctx, token)
}

// ApproveByToken is the customer's accept action. The approval itself is a
// conditional sent→approved update so concurrent clicks resolve to a single
// winner; only the winner creates the deposit invoice and moves the order out
// of inquiry.
func (u *quoteInteractor) ApproveByToken(ctx context.Context, token uuid.UUID) (QuoteApprovalResult, error) {
	q, err := u.quotes.FindByToken(ctx, token)
	if err != nil {
		return QuoteApprovalResult{}, err
	}

	now := u.clk.Now()
	if err := q.Approve(now); err != nil {
		if errors.Is(err, quote.ErrExpired) {
			// Persist the lapse so the staff list reflects it.
			_ = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
				_, uerr := u.quotes.UpdateStatus(ctx, tx, q.ID(), quote.StatusSent, quote.StatusExpired, nil)
				return uerr
			})
		}
		return QuoteApprovalResult{}, err
	}

	var won bool
	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		won, err = u.quotes.UpdateStatus(ctx, tx, q.ID(), quote.StatusSent, quote.StatusApproved, now)
		return err
	})
	if err != nil {
		return QuoteApprovalResult{}, err
	}
	if !won {
		return QuoteApprovalResult{}, ErrQuoteNotApproved
	}

	o, err := u.orders.FindByID(ctx, q.OrderID())
	if err != nil {
		return QuoteApprovalResult{}, err
	}

	total := q.TotalAmount()
	deposit := q.DepositAmount()
	inv, err := u.gateway.CreateInvoice(ctx, payment.InvoiceParams{
		OrderID:       o.ID().String(),
		OrderNumber:   o.OrderNumber(),
		AmountCents:   deposit,
		Currency:      "usd",
		CustomerEmail: o.Customer().Email,
		Purpose:       payment.PurposeDeposit,
		Description:   fmt.Sprintf("Deposit for order %s", o.OrderNumber()),
	})
	if err != nil {
		return QuoteApprovalResult{}, err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		if err := u.orders.SetAmounts(ctx, tx, o.ID(), &total, &deposit); err != nil {
			return err
		}
		if err := u.orders.SetDepositInvoice(ctx, tx, o.ID(), inv.ID); err != nil {
			return err
		}
		// inquiry → pending_payment: the checkout flow for this order has
		// begun. Conditional like every status write; a webhook racing ahead
		// of us (deposit already paid) just makes this a no-op.
		if next, ok := order.Transition(o.Status(), order.EventQuoteApproved); ok {
			if _, err := u.orders.UpdateStatus(ctx, tx, o.ID(), o.Status(), next, repository.StatusStamp{}); err != nil {
				return err
			}
		}
		if _, err := u.quotes.UpdateStatus(ctx, tx, q.ID(), quote.StatusApproved, quote.StatusConverted, nil); err != nil {
			return err
		}
		return u.notifications.Enqueue(ctx, tx, o.TenantID(), repository.NotifyQuoteApproved, o.Customer().Email, map[string]string{
			"order_number": o.OrderNumber(),
			"invoice_url":  inv.HostedURL,
		}, now)
	})
	if err != nil {
		return QuoteApprovalResult{}, err
	}

	q.MarkConverted()
	return QuoteApprovalResult{Quote: q, DepositInvoiceURL: inv.HostedURL}, nil
}

func (u *quoteInteractor) ExpireStale(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	return u.quotes.ExpireStale(ctx, tenantID)
}

package usecase

import (
	"context"
	"log/slog"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/payment"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownPurpose    = errs.New("unknown invoice purpose")
	ErrContractNotSigned = errs.New("contract must be signed before the order can be confirmed")
)

//go:generate mockgen -source=payments.go -destination=../../tests/mock/usecase/payments_mock.go -package=mock_usecase

// PaymentUsecase applies provider webhook events to orders. The provider
// retries and may reorder deliveries; every path here must converge to the
// same final state no matter how events arrive. That comes from two rules:
// the pure transition table decides legality, and the status write is a
// single conditional UPDATE, so a duplicate or stale event simply matches
// zero rows and is acknowledged.
type PaymentUsecase interface {
	Process(ctx context.Context, ev payment.Event) error
}

type paymentInteractor struct {
	tx            TxRunner
	orders        OrderRepo
	contracts     ContractRepo
	notifications NotificationRepo
	clk           clock.Clock
}

func NewPaymentUsecase(
	tx TxRunner,
	orders OrderRepo,
	contracts ContractRepo,
	notifications NotificationRepo,
	clk clock.Clock,
) PaymentUsecase {
	return &paymentInteractor{
		tx:            tx,
		orders:        orders,
		contracts:     contracts,
		notifications: notifications,
		clk:           clk,
	}
}

func (u *paymentInteractor) Process(ctx context.Context, ev payment.Event) error {
	switch ev.Type {
	case payment.EventCheckoutCompleted:
		return u.processCheckout(ctx, ev, order.EventCheckoutCompleted)
	case payment.EventCheckoutExpired:
		return u.processCheckout(ctx, ev, order.EventCheckoutExpired)
	case payment.EventInvoicePaid:
		return u.processInvoice(ctx, ev)
	default:
		// Unknown event types are acknowledged so the provider stops
		// retrying something we will never handle.
		slog.Debug("ignoring unhandled payment event type", "type", ev.Type)
		return nil
	}
}

func (u *paymentInteractor) processCheckout(ctx context.Context, ev payment.Event, domainEvent order.Event) error {
	data, err := ev.CheckoutSession()
	if err != nil {
		return err
	}

	o, err := u.resolveOrder(ctx, data.OrderID, data.SessionID)
	if err != nil {
		return err
	}

	now := u.clk.Now()
	stamp := repository.StatusStamp{}
	template := ""
	if domainEvent == order.EventCheckoutCompleted {
		stamp.PaidAt = &now
		template = repository.NotifyOrderConfirmed
	} else {
		stamp.AppendNote = "Checkout session expired before payment."
	}

	return u.applyEvent(ctx, o, domainEvent, stamp, template)
}

func (u *paymentInteractor) processInvoice(ctx context.Context, ev payment.Event) error {
	data, err := ev.Invoice()
	if err != nil {
		return err
	}

	o, err := u.resolveOrder(ctx, data.OrderID, "")
	if err != nil {
		return err
	}

	now := u.clk.Now()
	switch data.Purpose {
	case payment.PurposeDeposit:
		return u.applyEvent(ctx, o, order.EventDepositPaid,
			repository.StatusStamp{DepositPaidAt: &now}, repository.NotifyDepositReceived)
	case payment.PurposeBalance:
		// The wedding gate: a balance payment cannot confirm the order until
		// the contract is signed. Returning an error leaves the event
		// undelivered so the provider redelivers it after signing.
		if o.OrderType().RequiresContract() {
			signed, err := u.contracts.SignedForOrder(ctx, o.ID())
			if err != nil {
				return err
			}
			if !signed {
				return ErrContractNotSigned
			}
		}
		return u.applyEvent(ctx, o, order.EventBalancePaid,
			repository.StatusStamp{PaidAt: &now}, repository.NotifyBalanceReceived)
	default:
		return ErrUnknownPurpose
	}
}

// applyEvent runs the transition table and, when legal, the conditional
// status write plus the notification in one transaction. An illegal or stale
// event is a logged no-op, never an error: the provider must stop retrying.
func (u *paymentInteractor) applyEvent(ctx context.Context, o *order.Order, ev order.Event, stamp repository.StatusStamp, template string) error {
	next, ok := order.Transition(o.Status(), ev)
	if !ok {
		slog.Info("payment event is a no-op for current order status",
			"order_id", o.ID(), "status", o.Status().String(), "event", string(ev))
		return nil
	}

	return u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		applied, err := u.orders.UpdateStatus(ctx, tx, o.ID(), o.Status(), next, stamp)
		if err != nil {
			return err
		}
		if !applied {
			// Lost the race to a concurrent delivery. Converged already.
			slog.Info("payment event lost conditional update race", "order_id", o.ID(), "event", string(ev))
			return nil
		}
		if template == "" {
			return nil
		}
		return u.notifications.Enqueue(ctx, tx, o.TenantID(), template, o.Customer().Email, map[string]string{
			"order_number": o.OrderNumber(),
			"status":       next.String(),
		}, u.clk.Now())
	})
}

// resolveOrder prefers the client reference the provider echoes back, falling
// back to the stored checkout session id.
func (u *paymentInteractor) resolveOrder(ctx context.Context, orderRef, sessionID string) (*order.Order, error) {
	if orderRef != "" {
		id, err := uuid.Parse(orderRef)
		if err == nil {
			return u.orders.FindByID(ctx, id)
		}
	}
	if sessionID != "" {
		return u.orders.FindByCheckoutSession(ctx, sessionID)
	}
	return nil, errs.New("payment event carries no order reference")
}

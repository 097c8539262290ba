package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/payment"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotUnavailable       = errs.New("requested pickup slot is not available")
	ErrLeadTimeViolation     = errs.New("pickup date is inside the lead-time window")
	ErrPriceNotConfigured    = errs.New("no price configured for order type")
	ErrIdempotencyInFlight   = errs.New("request with this idempotency key is still processing")
	ErrIdempotencyMismatch   = errs.New("idempotency key was used with a different request")
	ErrInvalidTransition     = errs.New("order cannot move to the requested status")
)

const idempotencyTTL = 24 * time.Hour

// SubmitOrderInput is the public order form after transport decoding.
type SubmitOrderInput struct {
	IdempotencyKey   uuid.UUID
	OrderType        order.Type
	Customer         order.Customer
	EventDate        *clock.Date
	PickupDate       *clock.Date
	PickupTime       *clock.TimeOfDay
	BackupPickupDate *clock.Date
	BackupPickupTime *clock.TimeOfDay
	FormData         order.FormData
	Notes            string
}

// SubmitOrderResult carries the created order plus, for fixed-price types,
// the hosted checkout URL the customer is redirected to.
type SubmitOrderResult struct {
	Order       *order.Order
	CheckoutURL string
	Replayed    bool
}

type OrderUsecase interface {
	Submit(ctx context.Context, tenantID uuid.UUID, in SubmitOrderInput) (SubmitOrderResult, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error)
	List(ctx context.Context, tenantID uuid.UUID, f repository.OrderListFilter) ([]*order.Order, error)
	Complete(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error)
	Cancel(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error)
	SendBalanceInvoice(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error)
	ReminderSweep(ctx context.Context, tenantID uuid.UUID) (int, error)
}

type orderInteractor struct {
	tx            TxRunner
	orders        OrderRepo
	settings      SettingsRepo
	calendar      CalendarRepo
	commitments   CommitmentRepo
	idempotency   IdempotencyRepo
	notifications NotificationRepo
	gateway       payment.Gateway
	clk           clock.Clock
}

func NewOrderUsecase(
	tx TxRunner,
	orders OrderRepo,
	settings SettingsRepo,
	calendar CalendarRepo,
	commitments CommitmentRepo,
	idempotency IdempotencyRepo,
	notifications NotificationRepo,
	gateway payment.Gateway,
	clk clock.Clock,
) OrderUsecase {
	return &orderInteractor{
		tx:            tx,
		orders:        orders,
		settings:      settings,
		calendar:      calendar,
		commitments:   commitments,
		idempotency:   idempotency,
		notifications: notifications,
		gateway:       gateway,
		clk:           clk,
	}
}

// Submit creates an order from the public form. The idempotency key makes a
// retried POST return the original order instead of creating a second one.
func (u *orderInteractor) Submit(ctx context.Context, tenantID uuid.UUID, in SubmitOrderInput) (SubmitOrderResult, error) {
	if !in.OrderType.IsValid() {
		return SubmitOrderResult{}, ErrUnknownOrderType
	}

	hash := hashSubmitInput(in)
	claimed, err := u.idempotency.TryInsert(ctx, tenantID, in.IdempotencyKey, hash, u.clk.Now().Add(idempotencyTTL))
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if !claimed {
		return u.replaySubmit(ctx, tenantID, in.IdempotencyKey, hash)
	}

	result, err := u.submit(ctx, tenantID, in)
	if err != nil {
		// Release the claim so the customer can retry after fixing the input.
		_ = u.idempotency.Release(ctx, tenantID, in.IdempotencyKey)
		return SubmitOrderResult{}, err
	}
	return result, nil
}

func (u *orderInteractor) submit(ctx context.Context, tenantID uuid.UUID, in SubmitOrderInput) (SubmitOrderResult, error) {
	cfg, err := u.settings.TenantConfig(ctx, tenantID)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	today := clock.Today(u.clk, time.Local)
	if in.PickupDate != nil && in.PickupTime != nil {
		if err := u.validatePickupSlot(ctx, tenantID, cfg, in.OrderType, *in.PickupDate, *in.PickupTime, today); err != nil {
			return SubmitOrderResult{}, err
		}
	}

	var total *int64
	if !in.OrderType.RequiresQuote() {
		price, ok := cfg.PriceFor(in.OrderType.String())
		if !ok {
			return SubmitOrderResult{}, ErrPriceNotConfigured
		}
		total = &price
	}

	var created *order.Order
	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		seq, err := u.orders.NextSequence(ctx, tx, tenantID, today)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(order.NewOrderParams{
			TenantID:         tenantID,
			OrderNumber:      formatOrderNumber(today, seq),
			Type:             in.OrderType,
			Customer:         in.Customer,
			EventDate:        in.EventDate,
			PickupDate:       in.PickupDate,
			PickupTime:       in.PickupTime,
			BackupPickupDate: in.BackupPickupDate,
			BackupPickupTime: in.BackupPickupTime,
			TotalAmount:      total,
			FormData:         in.FormData,
			Notes:            in.Notes,
		})
		if err != nil {
			return err
		}

		if err := u.orders.Create(ctx, tx, o); err != nil {
			return err
		}
		if err := u.idempotency.MarkCompleted(ctx, tx, tenantID, in.IdempotencyKey, o.ID()); err != nil {
			return err
		}
		if err := u.notifications.Enqueue(ctx, tx, tenantID, repository.NotifyOrderReceived, o.Customer().Email, map[string]string{
			"order_number": o.OrderNumber(),
			"order_type":   o.OrderType().String(),
		}, u.clk.Now()); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		return SubmitOrderResult{}, err
	}

	result := SubmitOrderResult{Order: created}
	if created.Status() == order.StatusPendingPayment {
		url, err := u.startCheckout(ctx, created)
		if err != nil {
			return SubmitOrderResult{}, err
		}
		result.CheckoutURL = url
	}
	return result, nil
}

// startCheckout runs after the order committed: a gateway failure leaves a
// pending_payment order that staff can re-trigger, never a half-written row.
func (u *orderInteractor) startCheckout(ctx context.Context, o *order.Order) (string, error) {
	session, err := u.gateway.CreateCheckoutSession(ctx, payment.CheckoutParams{
		OrderID:       o.ID().String(),
		OrderNumber:   o.OrderNumber(),
		AmountCents:   *o.TotalAmount(),
		Currency:      "usd",
		CustomerEmail: o.Customer().Email,
		Description:   fmt.Sprintf("Order %s", o.OrderNumber()),
	})
	if err != nil {
		return "", err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return u.orders.SetCheckoutSession(ctx, tx, o.ID(), session.ID)
	})
	if err != nil {
		return "", err
	}
	o.AttachCheckoutSession(session.ID)
	return session.URL, nil
}

func (u *orderInteractor) replaySubmit(ctx context.Context, tenantID, key uuid.UUID, hash string) (SubmitOrderResult, error) {
	rec, err := u.idempotency.Get(ctx, tenantID, key)
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if rec.RequestHash != hash {
		return SubmitOrderResult{}, ErrIdempotencyMismatch
	}
	if rec.Status != repository.IdempotencyCompleted || rec.ResultID == nil {
		return SubmitOrderResult{}, ErrIdempotencyInFlight
	}

	o, err := u.orders.FindByIDForTenant(ctx, tenantID, *rec.ResultID)
	if err != nil {
		return SubmitOrderResult{}, err
	}
	return SubmitOrderResult{Order: o, Replayed: true}, nil
}

// validatePickupSlot recomputes availability for the single requested date and
// requires the exact time to be offered with capacity remaining.
func (u *orderInteractor) validatePickupSlot(ctx context.Context, tenantID uuid.UUID, cfg schedule.TenantConfig, ot order.Type, d clock.Date, t clock.TimeOfDay, today clock.Date) error {
	if d.Before(schedule.MinOrderDate(cfg, ot.String(), today)) {
		return ErrLeadTimeViolation
	}

	rules, err := u.calendar.LoadRules(ctx, tenantID, schedule.KindBakery, d, d)
	if err != nil {
		return err
	}
	com, err := u.commitments.PickupCommitments(ctx, tenantID, d, d, cfg.CountPendingAsCommitted)
	if err != nil {
		return err
	}

	days, err := schedule.ComputeSlots(cfg, rules, com, schedule.SlotRequest{
		Kind:      schedule.KindBakery,
		OrderType: ot.String(),
		From:      d,
		To:        d,
		Today:     today,
	})
	if err != nil {
		return err
	}

	for _, day := range days {
		for _, s := range day.Slots {
			if s.Time == t && s.Available {
				return nil
			}
		}
	}
	return ErrSlotUnavailable
}

func (u *orderInteractor) Get(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error) {
	return u.orders.FindByIDForTenant(ctx, tenantID, id)
}

func (u *orderInteractor) List(ctx context.Context, tenantID uuid.UUID, f repository.OrderListFilter) ([]*order.Order, error) {
	return u.orders.ListByTenant(ctx, tenantID, f)
}

func (u *orderInteractor) Complete(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error) {
	return u.applyStaffEvent(ctx, tenantID, id, order.EventCompleted)
}

func (u *orderInteractor) Cancel(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error) {
	return u.applyStaffEvent(ctx, tenantID, id, order.EventCancelled)
}

func (u *orderInteractor) applyStaffEvent(ctx context.Context, tenantID, id uuid.UUID, ev order.Event) (*order.Order, error) {
	o, err := u.orders.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	next, ok := order.Transition(o.Status(), ev)
	if !ok {
		return nil, ErrInvalidTransition
	}

	now := u.clk.Now()
	stamp := repository.StatusStamp{}
	if ev == order.EventCompleted {
		stamp.CompletedAt = &now
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		applied, err := u.orders.UpdateStatus(ctx, tx, id, o.Status(), next, stamp)
		if err != nil {
			return err
		}
		if !applied {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.orders.FindByIDForTenant(ctx, tenantID, id)
}

// SendBalanceInvoice creates the balance invoice for a deposit_paid order.
func (u *orderInteractor) SendBalanceInvoice(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error) {
	o, err := u.orders.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if o.Status() != order.StatusDepositPaid {
		return nil, ErrInvalidTransition
	}
	balance, ok := o.BalanceDue()
	if !ok || balance <= 0 {
		return nil, errs.New("order has no outstanding balance")
	}

	inv, err := u.gateway.CreateInvoice(ctx, payment.InvoiceParams{
		OrderID:       o.ID().String(),
		OrderNumber:   o.OrderNumber(),
		AmountCents:   balance,
		Currency:      "usd",
		CustomerEmail: o.Customer().Email,
		Purpose:       payment.PurposeBalance,
		Description:   fmt.Sprintf("Balance for order %s", o.OrderNumber()),
	})
	if err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return u.orders.SetBalanceInvoice(ctx, tx, o.ID(), inv.ID)
	})
	if err != nil {
		return nil, err
	}
	return u.orders.FindByIDForTenant(ctx, tenantID, id)
}

// ReminderSweep enqueues pickup reminders for orders whose pickup date is
// exactly the configured offset away. Safe to run repeatedly; the
// reminder_sent_at guard makes each order remind at most once.
func (u *orderInteractor) ReminderSweep(ctx context.Context, tenantID uuid.UUID) (int, error) {
	cfg, err := u.settings.TenantConfig(ctx, tenantID)
	if err != nil {
		return 0, err
	}

	target := clock.Today(u.clk, time.Local).AddDays(cfg.ReminderOffsetDays)
	due, err := u.orders.DueForReminder(ctx, tenantID, target)
	if err != nil {
		return 0, err
	}

	sent := 0
	now := u.clk.Now()
	for _, o := range due {
		o := o
		err := u.tx.RunInTx(ctx, func(tx db.DBTX) error {
			marked, err := u.orders.MarkReminderSent(ctx, tx, o.ID(), now)
			if err != nil {
				return err
			}
			if !marked {
				return nil
			}
			sent++
			return u.notifications.Enqueue(ctx, tx, tenantID, repository.NotifyPickupReminder, o.Customer().Email, map[string]string{
				"order_number": o.OrderNumber(),
				"pickup_date":  o.PickupDate().String(),
				"pickup_time":  o.PickupTime().String(),
			}, now)
		})
		if err != nil {
			return sent, err
		}
	}
	return sent, nil
}

func formatOrderNumber(d clock.Date, seq int) string {
	return fmt.Sprintf("ORD-%04d%02d%02d-%04d", d.Year, int(d.Month), d.Day, seq)
}

// hashSubmitInput fingerprints the request so a reused idempotency key with a
// different body is rejected instead of replayed.
func hashSubmitInput(in SubmitOrderInput) string {
	payload, _ := json.Marshal(struct {
		OrderType  string
		Email      string
		PickupDate *clock.Date
		PickupTime *clock.TimeOfDay
		EventDate  *clock.Date
		Notes      string
	}{
		OrderType:  in.OrderType.String(),
		Email:      in.Customer.Email,
		PickupDate: in.PickupDate,
		PickupTime: in.PickupTime,
		EventDate:  in.EventDate,
		Notes:      in.Notes,
	})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

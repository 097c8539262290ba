package order

import (
	"strings"
	"time"

	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidType       = errs.New("invalid order type")
	ErrMissingContact    = errs.New("customer name and email are required")
	ErrDepositOverTotal  = errs.New("deposit amount exceeds total amount")
	ErrNegativeAmount    = errs.New("amount cannot be negative")
	ErrMissingPickupSlot = errs.New("pickup date and time are required")
)

// Customer is the contact block captured at submission.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Order is the aggregate the lifecycle owns. Status never changes except
// through Transition applied by the payments/orders usecases, and orders are
// never hard-deleted.
type Order struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	orderNumber string
	orderType   Type
	status      Status
	customer    Customer

	eventDate        *clock.Date
	pickupDate       *clock.Date
	pickupTime       *clock.TimeOfDay
	backupPickupDate *clock.Date
	backupPickupTime *clock.TimeOfDay

	totalAmount   *int64
	depositAmount *int64
	formData      FormData
	notes         string

	checkoutSessionID *string
	depositInvoiceID  *string
	balanceInvoiceID  *string

	paidAt         *time.Time
	depositPaidAt  *time.Time
	completedAt    *time.Time
	reminderSentAt *time.Time

	createdAt time.Time
	updatedAt time.Time
}

type NewOrderParams struct {
	TenantID         uuid.UUID
	OrderNumber      string
	Type             Type
	Customer         Customer
	EventDate        *clock.Date
	PickupDate       *clock.Date
	PickupTime       *clock.TimeOfDay
	BackupPickupDate *clock.Date
	BackupPickupTime *clock.TimeOfDay
	TotalAmount      *int64
	FormData         FormData
	Notes            string
}

// NewOrder creates an order in its initial status: inquiry for quote-gated
// types, pending_payment for fixed-price types (the caller is expected to
// initiate checkout right after).
func NewOrder(p NewOrderParams) (*Order, error) {
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if strings.TrimSpace(p.Customer.Name) == "" || strings.TrimSpace(p.Customer.Email) == "" {
		return nil, ErrMissingContact
	}
	if p.TotalAmount != nil && *p.TotalAmount < 0 {
		return nil, ErrNegativeAmount
	}
	if !p.Type.RequiresQuote() && (p.PickupDate == nil || p.PickupTime == nil) {
		return nil, ErrMissingPickupSlot
	}

	status := StatusPendingPayment
	if p.Type.RequiresQuote() {
		status = StatusInquiry
	}

	return &Order{
		id:               uuid.New(),
		tenantID:         p.TenantID,
		orderNumber:      p.OrderNumber,
		orderType:        p.Type,
		status:           status,
		customer:         p.Customer,
		eventDate:        p.EventDate,
		pickupDate:       p.PickupDate,
		pickupTime:       p.PickupTime,
		backupPickupDate: p.BackupPickupDate,
		backupPickupTime: p.BackupPickupTime,
		totalAmount:      p.TotalAmount,
		formData:         p.FormData,
		notes:            p.Notes,
	}, nil
}

type ReconstructOrderParams struct {
	ID                uuid.UUID
	TenantID          uuid.UUID
	OrderNumber       string
	Type              Type
	Status            Status
	Customer          Customer
	EventDate         *clock.Date
	PickupDate        *clock.Date
	PickupTime        *clock.TimeOfDay
	BackupPickupDate  *clock.Date
	BackupPickupTime  *clock.TimeOfDay
	TotalAmount       *int64
	DepositAmount     *int64
	FormData          FormData
	Notes             string
	CheckoutSessionID *string
	DepositInvoiceID  *string
	BalanceInvoiceID  *string
	PaidAt            *time.Time
	DepositPaidAt     *time.Time
	CompletedAt       *time.Time
	ReminderSentAt    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func ReconstructOrder(p ReconstructOrderParams) *Order {
	return &Order{
		id:                p.ID,
		tenantID:          p.TenantID,
		orderNumber:       p.OrderNumber,
		orderType:         p.Type,
		status:            p.Status,
		customer:          p.Customer,
		eventDate:         p.EventDate,
		pickupDate:        p.PickupDate,
		pickupTime:        p.PickupTime,
		backupPickupDate:  p.BackupPickupDate,
		backupPickupTime:  p.BackupPickupTime,
		totalAmount:       p.TotalAmount,
		depositAmount:     p.DepositAmount,
		formData:          p.FormData,
		notes:             p.Notes,
		checkoutSessionID: p.CheckoutSessionID,
		depositInvoiceID:  p.DepositInvoiceID,
		balanceInvoiceID:  p.BalanceInvoiceID,
		paidAt:            p.PaidAt,
		depositPaidAt:     p.DepositPaidAt,
		completedAt:       p.CompletedAt,
		reminderSentAt:    p.ReminderSentAt,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}
}

// SetAmounts records the priced totals (from a quote or fixed pricing).
// Deposit may not exceed total when both are present.
func (o *Order) SetAmounts(total, deposit *int64) error {
	if total != nil && *total < 0 {
		return ErrNegativeAmount
	}
	if deposit != nil && *deposit < 0 {
		return ErrNegativeAmount
	}
	if total != nil && deposit != nil && *deposit > *total {
		return ErrDepositOverTotal
	}
	o.totalAmount = total
	o.depositAmount = deposit
	return nil
}

// BalanceDue returns total − deposit, and false when either amount is unset.
func (o *Order) BalanceDue() (int64, bool) {
	if o.totalAmount == nil || o.depositAmount == nil {
		return 0, false
	}
	return *o.totalAmount - *o.depositAmount, true
}

func (o *Order) AttachCheckoutSession(sessionID string) {
	o.checkoutSessionID = &sessionID
}

func (o *Order) ID() uuid.UUID                      { return o.id }
func (o *Order) TenantID() uuid.UUID                { return o.tenantID }
func (o *Order) OrderNumber() string                { return o.orderNumber }
func (o *Order) OrderType() Type                    { return o.orderType }
func (o *Order) Status() Status                     { return o.status }
func (o *Order) Customer() Customer                 { return o.customer }
func (o *Order) EventDate() *clock.Date             { return o.eventDate }
func (o *Order) PickupDate() *clock.Date            { return o.pickupDate }
func (o *Order) PickupTime() *clock.TimeOfDay       { return o.pickupTime }
func (o *Order) BackupPickupDate() *clock.Date      { return o.backupPickupDate }
func (o *Order) BackupPickupTime() *clock.TimeOfDay { return o.backupPickupTime }
func (o *Order) TotalAmount() *int64                { return o.totalAmount }
func (o *Order) DepositAmount() *int64              { return o.depositAmount }
func (o *Order) FormData() FormData                 { return o.formData }
func (o *Order) Notes() string                      { return o.notes }
func (o *Order) CheckoutSessionID() *string         { return o.checkoutSessionID }
func (o *Order) DepositInvoiceID() *string          { return o.depositInvoiceID }
func (o *Order) BalanceInvoiceID() *string          { return o.balanceInvoiceID }
func (o *Order) PaidAt() *time.Time                 { return o.paidAt }
func (o *Order) DepositPaidAt() *time.Time          { return o.depositPaidAt }
func (o *Order) CompletedAt() *time.Time            { return o.completedAt }
func (o *Order) ReminderSentAt() *time.Time         { return o.reminderSentAt }
func (o *Order) CreatedAt() time.Time               { return o.createdAt }
func (o *Order) UpdatedAt() time.Time               { return o.updatedAt }

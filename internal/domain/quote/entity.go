package quote

import (
	"sort"
	"strings"
	"time"

	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotEditable       = errs.New("quote is no longer editable")
	ErrNotDeletable      = errs.New("quote can no longer be deleted")
	ErrNotSent           = errs.New("quote has not been sent")
	ErrExpired           = errs.New("quote has expired")
	ErrInvalidPercentage = errs.New("deposit percentage must be between 0 and 100")
	ErrLineItemNotFound  = errs.New("line item not found")
)

// Quote is a staff-authored price breakdown for one order. Totals are
// recomputed from the line items on every mutation rather than adjusted
// incrementally, so a lost update can never leave subtotal out of sync.
type Quote struct {
	id                uuid.UUID
	tenantID          uuid.UUID
	orderID           uuid.UUID
	status            Status
	approvalToken     uuid.UUID
	depositPercentage int
	validUntil        *time.Time
	message           string

	subtotal      int64
	totalAmount   int64
	depositAmount int64
	lineItems     []LineItem

	approvedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewQuote(tenantID, orderID uuid.UUID, depositPercentage int, validUntil *time.Time, message string) (*Quote, error) {
	if depositPercentage < 0 || depositPercentage > 100 {
		return nil, ErrInvalidPercentage
	}

	return &Quote{
		id:                uuid.New(),
		tenantID:          tenantID,
		orderID:           orderID,
		status:            StatusDraft,
		approvalToken:     uuid.New(),
		depositPercentage: depositPercentage,
		validUntil:        validUntil,
		message:           strings.TrimSpace(message),
	}, nil
}

type ReconstructQuoteParams struct {
	ID                uuid.UUID
	TenantID          uuid.UUID
	OrderID           uuid.UUID
	Status            Status
	ApprovalToken     uuid.UUID
	DepositPercentage int
	ValidUntil        *time.Time
	Message           string
	Subtotal          int64
	TotalAmount       int64
	DepositAmount     int64
	LineItems         []LineItem
	ApprovedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func ReconstructQuote(p ReconstructQuoteParams) *Quote {
	return &Quote{
		id:                p.ID,
		tenantID:          p.TenantID,
		orderID:           p.OrderID,
		status:            p.Status,
		approvalToken:     p.ApprovalToken,
		depositPercentage: p.DepositPercentage,
		validUntil:        p.ValidUntil,
		message:           p.Message,
		subtotal:          p.Subtotal,
		totalAmount:       p.TotalAmount,
		depositAmount:     p.DepositAmount,
		lineItems:         p.LineItems,
		approvedAt:        p.ApprovedAt,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}
}

// recalculate rebuilds subtotal, total and deposit from the current line
// items. subtotal and total are kept equal; deposit rounds half-up.
func (q *Quote) recalculate() {
	var subtotal int64
	for _, li := range q.lineItems {
		subtotal += li.TotalPrice
	}
	q.subtotal = subtotal
	q.totalAmount = subtotal
	q.depositAmount = (subtotal*int64(q.depositPercentage) + 50) / 100
}

func (q *Quote) AddLineItem(description string, quantity int, unitPrice int64) (LineItem, error) {
	if !q.status.IsEditable() {
		return LineItem{}, ErrNotEditable
	}

	li, err := NewLineItem(description, quantity, unitPrice, len(q.lineItems))
	if err != nil {
		return LineItem{}, err
	}

	q.lineItems = append(q.lineItems, li)
	q.recalculate()
	return li, nil
}

type LineItemInput struct {
	Description string
	Quantity    int
	UnitPrice   int64
}

// ReplaceLineItems swaps the whole line list in one step, preserving the
// given order as sort order.
func (q *Quote) ReplaceLineItems(inputs []LineItemInput) error {
	if !q.status.IsEditable() {
		return ErrNotEditable
	}

	items := make([]LineItem, 0, len(inputs))
	for i, in := range inputs {
		li, err := NewLineItem(in.Description, in.Quantity, in.UnitPrice, i)
		if err != nil {
			return err
		}
		items = append(items, li)
	}

	q.lineItems = items
	q.recalculate()
	return nil
}

func (q *Quote) RemoveLineItem(id uuid.UUID) error {
	if !q.status.IsEditable() {
		return ErrNotEditable
	}

	idx := -1
	for i, li := range q.lineItems {
		if li.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrLineItemNotFound
	}

	q.lineItems = append(q.lineItems[:idx], q.lineItems[idx+1:]...)
	for i := range q.lineItems {
		q.lineItems[i].SortOrder = i
	}
	q.recalculate()
	return nil
}

// UpdateDetails patches deposit percentage, validity and message. Nil means
// leave unchanged.
func (q *Quote) UpdateDetails(depositPercentage *int, validUntil *time.Time, message *string) error {
	if !q.status.IsEditable() {
		return ErrNotEditable
	}

	if depositPercentage != nil {
		if *depositPercentage < 0 || *depositPercentage > 100 {
			return ErrInvalidPercentage
		}
		q.depositPercentage = *depositPercentage
	}
	if validUntil != nil {
		q.validUntil = validUntil
	}
	if message != nil {
		q.message = strings.TrimSpace(*message)
	}

	q.recalculate()
	return nil
}

// Send marks the quote visible to the customer. Sending an already-sent quote
// is a no-op so a repeated staff click does not error.
func (q *Quote) Send() error {
	switch q.status {
	case StatusDraft:
		q.status = StatusSent
		return nil
	case StatusSent:
		return nil
	default:
		return ErrNotEditable
	}
}

// Approve is the customer-facing token action. Legal only from sent; a quote
// past its validity window flips to expired instead of approving.
func (q *Quote) Approve(now time.Time) error {
	if q.status != StatusSent {
		return ErrNotSent
	}
	if q.validUntil != nil && now.After(*q.validUntil) {
		q.status = StatusExpired
		return ErrExpired
	}

	q.status = StatusApproved
	q.approvedAt = &now
	return nil
}

// MarkConverted records that the deposit invoice exists at the gateway; the
// quote is immutable from here on.
func (q *Quote) MarkConverted() {
	if q.status == StatusApproved {
		q.status = StatusConverted
	}
}

func (q *Quote) CanDelete() bool {
	return q.status.IsDeletable()
}

// LineItems returns items in presentation order.
func (q *Quote) LineItems() []LineItem {
	items := make([]LineItem, len(q.lineItems))
	copy(items, q.lineItems)
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	return items
}

func (q *Quote) ID() uuid.UUID           { return q.id }
func (q *Quote) TenantID() uuid.UUID     { return q.tenantID }
func (q *Quote) OrderID() uuid.UUID      { return q.orderID }
func (q *Quote) Status() Status          { return q.status }
func (q *Quote) ApprovalToken() uuid.UUID { return q.approvalToken }
func (q *Quote) DepositPercentage() int  { return q.depositPercentage }
func (q *Quote) ValidUntil() *time.Time  { return q.validUntil }
func (q *Quote) Message() string         { return q.message }
func (q *Quote) Subtotal() int64         { return q.subtotal }
func (q *Quote) TotalAmount() int64      { return q.totalAmount }
func (q *Quote) DepositAmount() int64    { return q.depositAmount }
func (q *Quote) ApprovedAt() *time.Time  { return q.approvedAt }
func (q *Quote) CreatedAt() time.Time    { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time    { return q.updatedAt }

package response

import (
	"time"

	"bakehouse/internal/domain/quote"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteLineItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unitPrice"`
	TotalPrice  int64     `json:"totalPrice"`
	SortOrder   int       `json:"sortOrder"`
}

type QuoteResponse struct {
	ID                uuid.UUID               `json:"id"`
	OrderID           uuid.UUID               `json:"orderId"`
	Status            string                  `json:"status"`
	DepositPercentage int                     `json:"depositPercentage"`
	ValidUntil        *time.Time              `json:"validUntil,omitempty"`
	Message           string                  `json:"message,omitempty"`
	Subtotal          int64                   `json:"subtotal"`
	TotalAmount       int64                   `json:"totalAmount"`
	DepositAmount     int64                   `json:"depositAmount"`
	LineItems         []QuoteLineItemResponse `json:"lineItems"`
	ApprovedAt        *time.Time              `json:"approvedAt,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

// QuoteApprovalResponse is what the customer lands on after approving.
type QuoteApprovalResponse struct {
	Quote             *QuoteResponse `json:"quote"`
	DepositInvoiceURL string         `json:"depositInvoiceUrl"`
}

func FromQuote(q *quote.Quote) *QuoteResponse {
	var items []QuoteLineItemResponse
	_ = copier.Copy(&items, q.LineItems())

	return &QuoteResponse{
		ID:                q.ID(),
		OrderID:           q.OrderID(),
		Status:            q.Status().String(),
		DepositPercentage: q.DepositPercentage(),
		ValidUntil:        q.ValidUntil(),
		Message:           q.Message(),
		Subtotal:          q.Subtotal(),
		TotalAmount:       q.TotalAmount(),
		DepositAmount:     q.DepositAmount(),
		LineItems:         items,
		ApprovedAt:        q.ApprovedAt(),
		CreatedAt:         q.CreatedAt(),
		UpdatedAt:         q.UpdatedAt(),
	}
}

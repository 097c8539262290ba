package request

import (
	"time"

	"bakehouse/internal/domain/quote"
	"bakehouse/internal/usecase"

	"github.com/google/uuid"
)

type QuoteLineItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" binding:"min=0"`
}

type CreateQuoteRequest struct {
	OrderID           uuid.UUID              `json:"order_id" binding:"required"`
	DepositPercentage int                    `json:"deposit_percentage" binding:"min=0,max=100"`
	ValidUntil        *time.Time             `json:"valid_until"`
	Message           string                 `json:"message"`
	LineItems         []QuoteLineItemRequest `json:"line_items" binding:"required,min=1,dive"`
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		OrderID:           r.OrderID,
		DepositPercentage: r.DepositPercentage,
		ValidUntil:        r.ValidUntil,
		Message:           r.Message,
		LineItems:         toLineItemInputs(r.LineItems),
	}
}

type UpdateQuoteRequest struct {
	DepositPercentage *int                   `json:"deposit_percentage" binding:"omitempty,min=0,max=100"`
	ValidUntil        *time.Time             `json:"valid_until"`
	Message           *string                `json:"message"`
	LineItems         []QuoteLineItemRequest `json:"line_items" binding:"omitempty,min=1,dive"`
}

func (r UpdateQuoteRequest) ToInput() usecase.UpdateQuoteInput {
	in := usecase.UpdateQuoteInput{
		DepositPercentage: r.DepositPercentage,
		ValidUntil:        r.ValidUntil,
		Message:           r.Message,
	}
	if r.LineItems != nil {
		in.LineItems = toLineItemInputs(r.LineItems)
	}
	return in
}

func toLineItemInputs(items []QuoteLineItemRequest) []quote.LineItemInput {
	out := make([]quote.LineItemInput, 0, len(items))
	for _, li := range items {
		out = append(out, quote.LineItemInput{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		})
	}
	return out
}

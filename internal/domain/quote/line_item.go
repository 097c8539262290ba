package quote

import (
	"strings"

	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription  = errs.New("line item description is required")
	ErrInvalidQuantity   = errs.New("line item quantity must be positive")
	ErrNegativeUnitPrice = errs.New("line item unit price cannot be negative")
)

// LineItem is owned exclusively by its quote and deleted in cascade with it.
// TotalPrice is always quantity * unit price; it is stored, not trusted:
// Recalculate derives quote totals from these rows from scratch.
type LineItem struct {
	ID          uuid.UUID
	Description string
	Quantity    int
	UnitPrice   int64
	TotalPrice  int64
	SortOrder   int
}

func NewLineItem(description string, quantity int, unitPrice int64, sortOrder int) (LineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return LineItem{}, ErrEmptyDescription
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return LineItem{}, ErrNegativeUnitPrice
	}

	return LineItem{
		ID:          uuid.New(),
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  int64(quantity) * unitPrice,
		SortOrder:   sortOrder,
	}, nil
}

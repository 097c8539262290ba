package response

import (
	"time"

	"bakehouse/internal/domain/contract"

	"github.com/google/uuid"
)

type ContractResponse struct {
	ID         uuid.UUID  `json:"id"`
	OrderID    uuid.UUID  `json:"orderId"`
	Status     string     `json:"status"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	SignerName *string    `json:"signerName,omitempty"`
	SignedAt   *time.Time `json:"signedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func FromContract(c *contract.Contract) *ContractResponse {
	return &ContractResponse{
		ID:         c.ID(),
		OrderID:    c.OrderID(),
		Status:     c.Status().String(),
		Title:      c.Title(),
		Body:       c.Body(),
		SignerName: c.SignerName(),
		SignedAt:   c.SignedAt(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

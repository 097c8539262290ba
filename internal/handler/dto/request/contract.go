package request

import (
	"github.com/google/uuid"
)

type CreateContractRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Title   string    `json:"title"`
	Body    string    `json:"body" binding:"required"`
}

type UpdateContractRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type SignContractRequest struct {
	SignerName string `json:"signer_name" binding:"required"`
	Agreed     bool   `json:"agreed"`
}

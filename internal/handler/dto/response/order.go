package response

import (
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/pkg/clock"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID               uuid.UUID  `json:"id"`
	OrderNumber      string     `json:"orderNumber"`
	OrderType        string     `json:"orderType"`
	Status           string     `json:"status"`
	CustomerName     string     `json:"customerName"`
	CustomerEmail    string     `json:"customerEmail"`
	CustomerPhone    string     `json:"customerPhone,omitempty"`
	EventDate        *string    `json:"eventDate,omitempty"`
	PickupDate       *string    `json:"pickupDate,omitempty"`
	PickupTime       *string    `json:"pickupTime,omitempty"`
	BackupPickupDate *string    `json:"backupPickupDate,omitempty"`
	BackupPickupTime *string    `json:"backupPickupTime,omitempty"`
	TotalAmount      *int64     `json:"totalAmount,omitempty"`
	DepositAmount    *int64     `json:"depositAmount,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
	DepositPaidAt    *time.Time `json:"depositPaidAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type SubmitOrderResponse struct {
	Order       *OrderResponse `json:"order"`
	CheckoutURL string         `json:"checkoutUrl,omitempty"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:               o.ID(),
		OrderNumber:      o.OrderNumber(),
		OrderType:        o.OrderType().String(),
		Status:           o.Status().String(),
		CustomerName:     o.Customer().Name,
		CustomerEmail:    o.Customer().Email,
		CustomerPhone:    o.Customer().Phone,
		EventDate:        dateString(o.EventDate()),
		PickupDate:       dateString(o.PickupDate()),
		PickupTime:       timeString(o.PickupTime()),
		BackupPickupDate: dateString(o.BackupPickupDate()),
		BackupPickupTime: timeString(o.BackupPickupTime()),
		TotalAmount:      o.TotalAmount(),
		DepositAmount:    o.DepositAmount(),
		Notes:            o.Notes(),
		PaidAt:           o.PaidAt(),
		DepositPaidAt:    o.DepositPaidAt(),
		CompletedAt:      o.CompletedAt(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
}

func FromOrders(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func dateString(d *clock.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func timeString(t *clock.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

package response

import (
	"time"

	"bakehouse/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingTypeID uuid.UUID `json:"bookingTypeId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		BookingTypeID: b.BookingTypeID(),
		CustomerName:  b.CustomerName(),
		CustomerEmail: b.CustomerEmail(),
		CustomerPhone: b.CustomerPhone(),
		StartTime:     b.StartTime(),
		EndTime:       b.EndTime(),
		Status:        b.Status().String(),
		Notes:         b.Notes(),
		CreatedAt:     b.CreatedAt(),
	}
}

func FromBookings(bookings []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

type BookingTypeResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	DurationMinutes    int       `json:"durationMinutes"`
	BufferAfterMinutes int       `json:"bufferAfterMinutes"`
	MaxBookingsPerDay  int       `json:"maxBookingsPerDay"`
	RequiresApproval   bool      `json:"requiresApproval"`
	IsActive           bool      `json:"isActive"`
}

func FromBookingType(bt *booking.BookingType) *BookingTypeResponse {
	return &BookingTypeResponse{
		ID:                 bt.ID(),
		Name:               bt.Name(),
		Description:        bt.Description(),
		DurationMinutes:    bt.DurationMinutes(),
		BufferAfterMinutes: bt.BufferAfterMinutes(),
		MaxBookingsPerDay:  bt.MaxBookingsPerDay(),
		RequiresApproval:   bt.RequiresApproval(),
		IsActive:           bt.IsActive(),
	}
}

func FromBookingTypes(types []*booking.BookingType) []*BookingTypeResponse {
	out := make([]*BookingTypeResponse, 0, len(types))
	for _, bt := range types {
		out = append(out, FromBookingType(bt))
	}
	return out
}

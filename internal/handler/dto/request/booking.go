package request

import (
	"bakehouse/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	BookingTypeID uuid.UUID `json:"booking_type_id" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerPhone string    `json:"customer_phone"`
	Date          string    `json:"date" binding:"required"`
	StartTime     string    `json:"start_time" binding:"required"`
	Notes         string    `json:"notes"`
}

func (r CreateBookingRequest) ToInput() (usecase.CreateBookingInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	start := r.StartTime
	startTime, err := ParseTimeOfDayPtr(&start)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}

	return usecase.CreateBookingInput{
		BookingTypeID: r.BookingTypeID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     *startTime,
		Notes:         r.Notes,
	}, nil
}

type CreateBookingTypeRequest struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	DurationMinutes    int    `json:"duration_minutes" binding:"required,min=1"`
	BufferAfterMinutes int    `json:"buffer_after_minutes" binding:"min=0"`
	MaxBookingsPerDay  int    `json:"max_bookings_per_day" binding:"required,min=1"`
	RequiresApproval   bool   `json:"requires_approval"`
}

type UpdateBookingTypeRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	DurationMinutes    *int    `json:"duration_minutes" binding:"omitempty,min=1"`
	BufferAfterMinutes *int    `json:"buffer_after_minutes" binding:"omitempty,min=0"`
	MaxBookingsPerDay  *int    `json:"max_bookings_per_day" binding:"omitempty,min=1"`
	RequiresApproval   *bool   `json:"requires_approval"`
	IsActive           *bool   `json:"is_active"`
}

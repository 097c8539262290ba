package booking

import (
	"strings"
	"time"

	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingContact  = errs.New("customer name and email are required")
	ErrInvalidInterval = errs.New("start time must be before end time")
	ErrNotPending      = errs.New("booking is not pending")
	ErrAlreadyCancelled = errs.New("booking is already cancelled")
)

// Booking is one consulting appointment instance.
type Booking struct {
	id            uuid.UUID
	tenantID      uuid.UUID
	bookingTypeID uuid.UUID
	customerName  string
	customerEmail string
	customerPhone string
	startTime     time.Time
	endTime       time.Time
	status        Status
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

type NewBookingParams struct {
	TenantID      uuid.UUID
	BookingTypeID uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	StartTime     time.Time
	EndTime       time.Time
	Notes         string
}

// NewBooking creates the appointment in pending or confirmed depending on
// whether the booking type requires staff approval.
func NewBooking(p NewBookingParams, requiresApproval bool) (*Booking, error) {
	if strings.TrimSpace(p.CustomerName) == "" || strings.TrimSpace(p.CustomerEmail) == "" {
		return nil, ErrMissingContact
	}
	if !p.StartTime.Before(p.EndTime) {
		return nil, ErrInvalidInterval
	}

	status := StatusConfirmed
	if requiresApproval {
		status = StatusPending
	}

	return &Booking{
		id:            uuid.New(),
		tenantID:      p.TenantID,
		bookingTypeID: p.BookingTypeID,
		customerName:  strings.TrimSpace(p.CustomerName),
		customerEmail: strings.TrimSpace(p.CustomerEmail),
		customerPhone: strings.TrimSpace(p.CustomerPhone),
		startTime:     p.StartTime,
		endTime:       p.EndTime,
		status:        status,
		notes:         p.Notes,
	}, nil
}

func ReconstructBooking(
	id, tenantID, bookingTypeID uuid.UUID,
	customerName, customerEmail, customerPhone string,
	startTime, endTime time.Time,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		tenantID:      tenantID,
		bookingTypeID: bookingTypeID,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		startTime:     startTime,
		endTime:       endTime,
		status:        status,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) TenantID() uuid.UUID      { return b.tenantID }
func (b *Booking) BookingTypeID() uuid.UUID { return b.bookingTypeID }
func (b *Booking) CustomerName() string     { return b.customerName }
func (b *Booking) CustomerEmail() string    { return b.customerEmail }
func (b *Booking) CustomerPhone() string    { return b.customerPhone }
func (b *Booking) StartTime() time.Time     { return b.startTime }
func (b *Booking) EndTime() time.Time       { return b.endTime }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Notes() string            { return b.notes }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

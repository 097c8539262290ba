package booking

import (
	"strings"
	"time"

	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errs.New("booking type name is required")
	ErrInvalidDuration = errs.New("duration must be positive")
	ErrInvalidBuffer   = errs.New("buffer cannot be negative")
	ErrInvalidMaxPerDay = errs.New("max bookings per day must be positive")
)

// BookingType is a consulting service definition. Duration plus buffer drives
// the slot stepping in the availability engine; MaxBookingsPerDay caps how
// many appointments a single calendar day may hold.
type BookingType struct {
	id                 uuid.UUID
	tenantID           uuid.UUID
	name               string
	description        string
	durationMinutes    int
	bufferAfterMinutes int
	maxBookingsPerDay  int
	requiresApproval   bool
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

type BookingTypeParams struct {
	TenantID           uuid.UUID
	Name               string
	Description        string
	DurationMinutes    int
	BufferAfterMinutes int
	MaxBookingsPerDay  int
	RequiresApproval   bool
}

func NewBookingType(p BookingTypeParams) (*BookingType, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrEmptyName
	}
	if p.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if p.BufferAfterMinutes < 0 {
		return nil, ErrInvalidBuffer
	}
	if p.MaxBookingsPerDay <= 0 {
		return nil, ErrInvalidMaxPerDay
	}

	return &BookingType{
		id:                 uuid.New(),
		tenantID:           p.TenantID,
		name:               strings.TrimSpace(p.Name),
		description:        p.Description,
		durationMinutes:    p.DurationMinutes,
		bufferAfterMinutes: p.BufferAfterMinutes,
		maxBookingsPerDay:  p.MaxBookingsPerDay,
		requiresApproval:   p.RequiresApproval,
		isActive:           true,
	}, nil
}

func ReconstructBookingType(
	id, tenantID uuid.UUID,
	name, description string,
	durationMinutes, bufferAfterMinutes, maxBookingsPerDay int,
	requiresApproval, isActive bool,
	createdAt, updatedAt time.Time,
) *BookingType {
	return &BookingType{
		id:                 id,
		tenantID:           tenantID,
		name:               name,
		description:        description,
		durationMinutes:    durationMinutes,
		bufferAfterMinutes: bufferAfterMinutes,
		maxBookingsPerDay:  maxBookingsPerDay,
		requiresApproval:   requiresApproval,
		isActive:           isActive,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Update patches the editable fields. Nil means leave unchanged.
func (bt *BookingType) Update(name, description *string, durationMinutes, bufferAfterMinutes, maxBookingsPerDay *int, requiresApproval, isActive *bool) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ErrEmptyName
		}
		bt.name = strings.TrimSpace(*name)
	}
	if description != nil {
		bt.description = *description
	}
	if durationMinutes != nil {
		if *durationMinutes <= 0 {
			return ErrInvalidDuration
		}
		bt.durationMinutes = *durationMinutes
	}
	if bufferAfterMinutes != nil {
		if *bufferAfterMinutes < 0 {
			return ErrInvalidBuffer
		}
		bt.bufferAfterMinutes = *bufferAfterMinutes
	}
	if maxBookingsPerDay != nil {
		if *maxBookingsPerDay <= 0 {
			return ErrInvalidMaxPerDay
		}
		bt.maxBookingsPerDay = *maxBookingsPerDay
	}
	if requiresApproval != nil {
		bt.requiresApproval = *requiresApproval
	}
	if isActive != nil {
		bt.isActive = *isActive
	}
	return nil
}

func (bt *BookingType) ID() uuid.UUID           { return bt.id }
func (bt *BookingType) TenantID() uuid.UUID     { return bt.tenantID }
func (bt *BookingType) Name() string            { return bt.name }
func (bt *BookingType) Description() string     { return bt.description }
func (bt *BookingType) DurationMinutes() int    { return bt.durationMinutes }
func (bt *BookingType) BufferAfterMinutes() int { return bt.bufferAfterMinutes }
func (bt *BookingType) MaxBookingsPerDay() int  { return bt.maxBookingsPerDay }
func (bt *BookingType) RequiresApproval() bool  { return bt.requiresApproval }
func (bt *BookingType) IsActive() bool          { return bt.isActive }
func (bt *BookingType) CreatedAt() time.Time    { return bt.createdAt }
func (bt *BookingType) UpdatedAt() time.Time    { return bt.updatedAt }

package usecase

import (
	"context"
	"time"

	"bakehouse/internal/domain/booking"
	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/infra"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingSlotTaken = errs.New("requested appointment slot is not available")

type CreateBookingInput struct {
	BookingTypeID uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          clock.Date
	StartTime     clock.TimeOfDay
	Notes         string
}

type BookingUsecase interface {
	Create(ctx context.Context, tenantID uuid.UUID, in CreateBookingInput) (*booking.Booking, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, tenantID uuid.UUID, from, to clock.Date) ([]*booking.Booking, error)
	Confirm(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error)

	CreateType(ctx context.Context, tenantID uuid.UUID, p booking.BookingTypeParams) (*booking.BookingType, error)
	UpdateType(ctx context.Context, tenantID, id uuid.UUID, patch BookingTypePatch) (*booking.BookingType, error)
	ListTypes(ctx context.Context, tenantID uuid.UUID, activeOnly bool) ([]*booking.BookingType, error)
	DeleteType(ctx context.Context, tenantID, id uuid.UUID) error
}

type BookingTypePatch struct {
	Name               *string
	Description        *string
	DurationMinutes    *int
	BufferAfterMinutes *int
	MaxBookingsPerDay  *int
	RequiresApproval   *bool
	IsActive           *bool
}

type bookingInteractor struct {
	tx            TxRunner
	bookings      BookingRepo
	bookingTypes  BookingTypeRepo
	availability  AvailabilityUsecase
	notifications NotificationRepo
	clk           clock.Clock
}

func NewBookingUsecase(
	tx TxRunner,
	bookings BookingRepo,
	bookingTypes BookingTypeRepo,
	availability AvailabilityUsecase,
	notifications NotificationRepo,
	clk clock.Clock,
) BookingUsecase {
	return &bookingInteractor{
		tx:            tx,
		bookings:      bookings,
		bookingTypes:  bookingTypes,
		availability:  availability,
		notifications: notifications,
		clk:           clk,
	}
}

// Create books an appointment after recomputing availability for the
// requested date; the exact start time must still be offered.
func (u *bookingInteractor) Create(ctx context.Context, tenantID uuid.UUID, in CreateBookingInput) (*booking.Booking, error) {
	bt, err := u.bookingTypes.FindByID(ctx, tenantID, in.BookingTypeID)
	if err != nil {
		return nil, err
	}
	if !bt.IsActive() {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking type is not active")
	}

	avail, err := u.availability.ConsultingSlots(ctx, tenantID, bt.ID(), in.Date, in.Date)
	if err != nil {
		return nil, err
	}
	if !slotOffered(avail.Days, in.Date, in.StartTime) {
		return nil, ErrBookingSlotTaken
	}

	start := in.Date.At().Add(time.Duration(in.StartTime.Minutes()) * time.Minute)
	end := start.Add(time.Duration(bt.DurationMinutes()) * time.Minute)

	b, err := booking.NewBooking(booking.NewBookingParams{
		TenantID:      tenantID,
		BookingTypeID: bt.ID(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		StartTime:     start,
		EndTime:       end,
		Notes:         in.Notes,
	}, bt.RequiresApproval())
	if err != nil {
		return nil, err
	}

	template := repository.NotifyBookingConfirmed
	if b.Status() == booking.StatusPending {
		template = repository.NotifyBookingRequested
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		if err := u.bookings.Create(ctx, tx, b); err != nil {
			return err
		}
		return u.notifications.Enqueue(ctx, tx, tenantID, template, b.CustomerEmail(), map[string]string{
			"booking_type": bt.Name(),
			"start_time":   b.StartTime().Format(time.RFC3339),
		}, u.clk.Now())
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func slotOffered(days []schedule.DaySlots, d clock.Date, t clock.TimeOfDay) bool {
	for _, day := range days {
		if day.Date != d {
			continue
		}
		for _, s := range day.Slots {
			if s.Time == t && s.Available {
				return true
			}
		}
	}
	return false
}

func (u *bookingInteractor) Get(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error) {
	return u.bookings.FindByID(ctx, tenantID, id)
}

func (u *bookingInteractor) List(ctx context.Context, tenantID uuid.UUID, from, to clock.Date) ([]*booking.Booking, error) {
	return u.bookings.ListByTenant(ctx, tenantID, from.At(), to.AddDays(1).At())
}

func (u *bookingInteractor) Confirm(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error) {
	return u.applyStatus(ctx, tenantID, id, booking.StatusPending, booking.StatusConfirmed, repository.NotifyBookingConfirmed)
}

func (u *bookingInteractor) Cancel(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error) {
	b, err := u.bookings.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return u.applyStatus(ctx, tenantID, id, b.Status(), booking.StatusCancelled, "")
}

func (u *bookingInteractor) applyStatus(ctx context.Context, tenantID, id uuid.UUID, from, to booking.Status, template string) (*booking.Booking, error) {
	b, err := u.bookings.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, ErrInvalidTransition
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		applied, err := u.bookings.UpdateStatus(ctx, tx, id, from, to)
		if err != nil {
			return err
		}
		if !applied {
			return ErrInvalidTransition
		}
		if template == "" {
			return nil
		}
		return u.notifications.Enqueue(ctx, tx, tenantID, template, b.CustomerEmail(), map[string]string{
			"start_time": b.StartTime().Format(time.RFC3339),
		}, u.clk.Now())
	})
	if err != nil {
		return nil, err
	}
	return u.bookings.FindByID(ctx, tenantID, id)
}

func (u *bookingInteractor) CreateType(ctx context.Context, tenantID uuid.UUID, p booking.BookingTypeParams) (*booking.BookingType, error) {
	p.TenantID = tenantID
	bt, err := booking.NewBookingType(p)
	if err != nil {
		return nil, err
	}
	if err := u.bookingTypes.Create(ctx, bt); err != nil {
		return nil, err
	}
	return bt, nil
}

func (u *bookingInteractor) UpdateType(ctx context.Context, tenantID, id uuid.UUID, patch BookingTypePatch) (*booking.BookingType, error) {
	bt, err := u.bookingTypes.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := bt.Update(patch.Name, patch.Description, patch.DurationMinutes, patch.BufferAfterMinutes, patch.MaxBookingsPerDay, patch.RequiresApproval, patch.IsActive); err != nil {
		return nil, err
	}
	if err := u.bookingTypes.Save(ctx, bt); err != nil {
		return nil, err
	}
	return bt, nil
}

func (u *bookingInteractor) ListTypes(ctx context.Context, tenantID uuid.UUID, activeOnly bool) ([]*booking.BookingType, error) {
	return u.bookingTypes.List(ctx, tenantID, activeOnly)
}

func (u *bookingInteractor) DeleteType(ctx context.Context, tenantID, id uuid.UUID) error {
	return u.bookingTypes.Delete(ctx, tenantID, id)
}

package usecase

import (
	"context"
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/infra"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../tests/mock/usecase/availability_mock.go -package=mock_usecase

var ErrUnknownOrderType = errs.New("unknown order type")

// PickupAvailability is the bakery slot sheet for one order type and range.
type PickupAvailability struct {
	OrderType    order.Type
	LeadTimeDays int
	MinDate      clock.Date
	Days         []schedule.DaySlots
}

// ConsultingAvailability is the appointment slot sheet for one booking type.
type ConsultingAvailability struct {
	BookingTypeID   uuid.UUID
	DurationMinutes int
	MinDate         clock.Date
	Days            []schedule.DaySlots
}

type AvailabilityUsecase interface {
	PickupSlots(ctx context.Context, tenantID uuid.UUID, orderType order.Type, from, to clock.Date) (PickupAvailability, error)
	ConsultingSlots(ctx context.Context, tenantID, bookingTypeID uuid.UUID, from, to clock.Date) (ConsultingAvailability, error)
}

type availabilityInteractor struct {
	settings     SettingsRepo
	calendar     CalendarRepo
	commitments  CommitmentRepo
	bookingTypes BookingTypeRepo
	clk          clock.Clock
}

func NewAvailabilityUsecase(
	settings SettingsRepo,
	calendar CalendarRepo,
	commitments CommitmentRepo,
	bookingTypes BookingTypeRepo,
	clk clock.Clock,
) AvailabilityUsecase {
	return &availabilityInteractor{
		settings:     settings,
		calendar:     calendar,
		commitments:  commitments,
		bookingTypes: bookingTypes,
		clk:          clk,
	}
}

func (u *availabilityInteractor) PickupSlots(ctx context.Context, tenantID uuid.UUID, orderType order.Type, from, to clock.Date) (PickupAvailability, error) {
	if !orderType.IsValid() {
		return PickupAvailability{}, ErrUnknownOrderType
	}

	cfg, err := u.settings.TenantConfig(ctx, tenantID)
	if err != nil {
		return PickupAvailability{}, err
	}

	rules, err := u.calendar.LoadRules(ctx, tenantID, schedule.KindBakery, from, to)
	if err != nil {
		return PickupAvailability{}, err
	}

	com, err := u.commitments.PickupCommitments(ctx, tenantID, from, to, cfg.CountPendingAsCommitted)
	if err != nil {
		return PickupAvailability{}, err
	}

	today := clock.Today(u.clk, time.Local)
	days, err := schedule.ComputeSlots(cfg, rules, com, schedule.SlotRequest{
		Kind:      schedule.KindBakery,
		OrderType: orderType.String(),
		From:      from,
		To:        to,
		Today:     today,
	})
	if err != nil {
		return PickupAvailability{}, err
	}

	return PickupAvailability{
		OrderType:    orderType,
		LeadTimeDays: cfg.LeadTimeDays(orderType.String()),
		MinDate:      schedule.MinOrderDate(cfg, orderType.String(), today),
		Days:         days,
	}, nil
}

func (u *availabilityInteractor) ConsultingSlots(ctx context.Context, tenantID, bookingTypeID uuid.UUID, from, to clock.Date) (ConsultingAvailability, error) {
	bt, err := u.bookingTypes.FindByID(ctx, tenantID, bookingTypeID)
	if err != nil {
		return ConsultingAvailability{}, err
	}
	if !bt.IsActive() {
		return ConsultingAvailability{}, infra.NewRepoErr(infra.KindNotFound, "booking type is not active")
	}

	cfg, err := u.settings.TenantConfig(ctx, tenantID)
	if err != nil {
		return ConsultingAvailability{}, err
	}

	rules, err := u.calendar.LoadRules(ctx, tenantID, schedule.KindConsulting, from, to)
	if err != nil {
		return ConsultingAvailability{}, err
	}

	// Whether a pending approval-gated booking holds its slot is the same
	// tenant policy that governs pending_payment orders.
	com, err := u.commitments.BookingCommitments(ctx, tenantID, from, to, cfg.CountPendingAsCommitted)
	if err != nil {
		return ConsultingAvailability{}, err
	}

	today := clock.Today(u.clk, time.Local)
	days, err := schedule.ComputeSlots(cfg, rules, com, schedule.SlotRequest{
		Kind:            schedule.KindConsulting,
		DurationMinutes: bt.DurationMinutes(),
		BufferMinutes:   bt.BufferAfterMinutes(),
		MaxPerDay:       bt.MaxBookingsPerDay(),
		From:            from,
		To:              to,
		Today:           today,
	})
	if err != nil {
		return ConsultingAvailability{}, err
	}

	return ConsultingAvailability{
		BookingTypeID:   bt.ID(),
		DurationMinutes: bt.DurationMinutes(),
		MinDate:         today.AddDays(cfg.DefaultLeadTimeDays),
		Days:            days,
	}, nil
}

package usecase

import (
	"context"

	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errs.New("window start must be before end")

// CalendarUsecase is the staff surface for the availability rules the engine
// reads: weekly windows, date overrides, blackouts, per-slot capacities and
// the tenant settings snapshot.
type CalendarUsecase interface {
	ListWindows(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind) ([]schedule.Window, error)
	CreateWindow(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, p repository.WindowParams) (uuid.UUID, error)
	UpdateWindow(ctx context.Context, tenantID, id uuid.UUID, p repository.WindowParams) error
	DeleteWindow(ctx context.Context, tenantID, id uuid.UUID) error

	UpsertOverride(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, p repository.OverrideParams) (uuid.UUID, error)
	DeleteOverride(ctx context.Context, tenantID, id uuid.UUID) error

	ListBlackouts(ctx context.Context, tenantID uuid.UUID) ([]schedule.Blackout, error)
	CreateBlackout(ctx context.Context, tenantID uuid.UUID, date clock.Date, reason string) (uuid.UUID, error)
	DeleteBlackout(ctx context.Context, tenantID, id uuid.UUID) error

	UpsertCapacity(ctx context.Context, tenantID uuid.UUID, c schedule.CapacityOverride) error
	DeleteCapacity(ctx context.Context, tenantID uuid.UUID, date clock.Date, t clock.TimeOfDay) error

	GetSettings(ctx context.Context, tenantID uuid.UUID) (map[string]string, error)
	PutSetting(ctx context.Context, tenantID uuid.UUID, key, value string) error
	DeleteSetting(ctx context.Context, tenantID uuid.UUID, key string) error
}

type calendarInteractor struct {
	calendar CalendarRepo
	settings SettingsRepo
}

func NewCalendarUsecase(calendar CalendarRepo, settings SettingsRepo) CalendarUsecase {
	return &calendarInteractor{calendar: calendar, settings: settings}
}

func (u *calendarInteractor) ListWindows(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind) ([]schedule.Window, error) {
	return u.calendar.ListWindows(ctx, tenantID, kind)
}

func (u *calendarInteractor) CreateWindow(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, p repository.WindowParams) (uuid.UUID, error) {
	if p.Start >= p.End {
		return uuid.Nil, ErrInvalidWindow
	}
	return u.calendar.CreateWindow(ctx, tenantID, kind, p)
}

func (u *calendarInteractor) UpdateWindow(ctx context.Context, tenantID, id uuid.UUID, p repository.WindowParams) error {
	if p.Start >= p.End {
		return ErrInvalidWindow
	}
	return u.calendar.UpdateWindow(ctx, tenantID, id, p)
}

func (u *calendarInteractor) DeleteWindow(ctx context.Context, tenantID, id uuid.UUID) error {
	return u.calendar.DeleteWindow(ctx, tenantID, id)
}

func (u *calendarInteractor) UpsertOverride(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, p repository.OverrideParams) (uuid.UUID, error) {
	if p.Start != nil && p.End != nil && *p.Start >= *p.End {
		return uuid.Nil, ErrInvalidWindow
	}
	return u.calendar.UpsertOverride(ctx, tenantID, kind, p)
}

func (u *calendarInteractor) DeleteOverride(ctx context.Context, tenantID, id uuid.UUID) error {
	return u.calendar.DeleteOverride(ctx, tenantID, id)
}

func (u *calendarInteractor) ListBlackouts(ctx context.Context, tenantID uuid.UUID) ([]schedule.Blackout, error) {
	return u.calendar.ListBlackouts(ctx, tenantID)
}

func (u *calendarInteractor) CreateBlackout(ctx context.Context, tenantID uuid.UUID, date clock.Date, reason string) (uuid.UUID, error) {
	return u.calendar.CreateBlackout(ctx, tenantID, date, reason)
}

func (u *calendarInteractor) DeleteBlackout(ctx context.Context, tenantID, id uuid.UUID) error {
	return u.calendar.DeleteBlackout(ctx, tenantID, id)
}

func (u *calendarInteractor) UpsertCapacity(ctx context.Context, tenantID uuid.UUID, c schedule.CapacityOverride) error {
	return u.calendar.UpsertCapacity(ctx, tenantID, c)
}

func (u *calendarInteractor) DeleteCapacity(ctx context.Context, tenantID uuid.UUID, date clock.Date, t clock.TimeOfDay) error {
	return u.calendar.DeleteCapacity(ctx, tenantID, date, t)
}

func (u *calendarInteractor) GetSettings(ctx context.Context, tenantID uuid.UUID) (map[string]string, error) {
	return u.settings.List(ctx, tenantID)
}

func (u *calendarInteractor) PutSetting(ctx context.Context, tenantID uuid.UUID, key, value string) error {
	return u.settings.Upsert(ctx, tenantID, key, value)
}

func (u *calendarInteractor) DeleteSetting(ctx context.Context, tenantID uuid.UUID, key string) error {
	return u.settings.Delete(ctx, tenantID, key)
}

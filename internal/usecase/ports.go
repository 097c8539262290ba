// Package usecase holds the application services. Each service depends on
// narrow repository ports defined here and mocked in tests.
package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports_mock.go -package=mock_usecase

import (
	"context"
	"time"

	"bakehouse/internal/domain/booking"
	"bakehouse/internal/domain/contract"
	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/quote"
	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/domain/user"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"

	"github.com/google/uuid"
)

// TxRunner is the transaction boundary. The callback's DBTX is handed to
// repository writes so they commit or roll back together.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx db.DBTX) error) error
}

type OrderRepo interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error)
	FindByCheckoutSession(ctx context.Context, sessionID string) (*order.Order, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, f repository.OrderListFilter) ([]*order.Order, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to order.Status, stamp repository.StatusStamp) (bool, error)
	SetCheckoutSession(ctx context.Context, tx db.DBTX, id uuid.UUID, sessionID string) error
	SetDepositInvoice(ctx context.Context, tx db.DBTX, id uuid.UUID, invoiceID string) error
	SetBalanceInvoice(ctx context.Context, tx db.DBTX, id uuid.UUID, invoiceID string) error
	SetAmounts(ctx context.Context, tx db.DBTX, id uuid.UUID, total, deposit *int64) error
	DueForReminder(ctx context.Context, tenantID uuid.UUID, pickupDate clock.Date) ([]*order.Order, error)
	MarkReminderSent(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) (bool, error)
	NextSequence(ctx context.Context, tx db.DBTX, tenantID uuid.UUID, date clock.Date) (int, error)
}

type QuoteRepo interface {
	Create(ctx context.Context, tx db.DBTX, q *quote.Quote) error
	Save(ctx context.Context, tx db.DBTX, q *quote.Quote) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error)
	FindByOrderID(ctx context.Context, tenantID, orderID uuid.UUID) (*quote.Quote, error)
	FindByToken(ctx context.Context, token uuid.UUID) (*quote.Quote, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to quote.Status, approvedAt any) (bool, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	ExpireStale(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type ContractRepo interface {
	Create(ctx context.Context, tx db.DBTX, c *contract.Contract) error
	Save(ctx context.Context, tx db.DBTX, c *contract.Contract) error
	Sign(ctx context.Context, tx db.DBTX, id uuid.UUID, signerName, signerIP string, at time.Time) (bool, error)
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*contract.Contract, error)
	FindByOrderID(ctx context.Context, tenantID, orderID uuid.UUID) (*contract.Contract, error)
	FindByToken(ctx context.Context, token uuid.UUID) (*contract.Contract, error)
	SignedForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type BookingRepo interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to booking.Status) (bool, error)
}

type BookingTypeRepo interface {
	Create(ctx context.Context, bt *booking.BookingType) error
	Save(ctx context.Context, bt *booking.BookingType) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*booking.BookingType, error)
	List(ctx context.Context, tenantID uuid.UUID, activeOnly bool) ([]*booking.BookingType, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type CalendarRepo interface {
	LoadRules(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, from, to clock.Date) (schedule.Rules, error)
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
}

type SettingsRepo interface {
	TenantConfig(ctx context.Context, tenantID uuid.UUID) (schedule.TenantConfig, error)
	Upsert(ctx context.Context, tenantID uuid.UUID, key, value string) error
	Delete(ctx context.Context, tenantID uuid.UUID, key string) error
	List(ctx context.Context, tenantID uuid.UUID) (map[string]string, error)
}

type CommitmentRepo interface {
	PickupCommitments(ctx context.Context, tenantID uuid.UUID, from, to clock.Date, countPending bool) (schedule.Commitments, error)
	BookingCommitments(ctx context.Context, tenantID uuid.UUID, from, to clock.Date, countPending bool) (schedule.Commitments, error)
}

type IdempotencyRepo interface {
	TryInsert(ctx context.Context, tenantID, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, tenantID, key uuid.UUID) (*repository.IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, tx db.DBTX, tenantID, key, resultID uuid.UUID) error
	Release(ctx context.Context, tenantID, key uuid.UUID) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type NotificationRepo interface {
	Enqueue(ctx context.Context, tx db.DBTX, tenantID uuid.UUID, templateKey, recipient string, payload any, runAt time.Time) error
	DuePending(ctx context.Context, now time.Time, limit int32) ([]repository.NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

// NotificationSender delivers one outbox job over whatever transport is
// configured. Delivery happens after the job is claimed, never inside the
// enqueueing transaction.
type NotificationSender interface {
	Send(ctx context.Context, job repository.NotificationJob) error
}

type UserRepo interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

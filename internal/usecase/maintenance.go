package usecase

import (
	"context"
	"log/slog"

	"bakehouse/internal/pkg/clock"
)

// MaintenanceUsecase runs the periodic housekeeping passes: draining the
// notification outbox and purging expired idempotency keys.
type MaintenanceUsecase interface {
	DispatchNotifications(ctx context.Context, limit int32) (int, error)
	PurgeIdempotencyKeys(ctx context.Context) (int64, error)
}

type maintenanceInteractor struct {
	notifications NotificationRepo
	idempotency   IdempotencyRepo
	sender        NotificationSender
	clk           clock.Clock
}

func NewMaintenanceUsecase(
	notifications NotificationRepo,
	idempotency IdempotencyRepo,
	sender NotificationSender,
	clk clock.Clock,
) MaintenanceUsecase {
	return &maintenanceInteractor{
		notifications: notifications,
		idempotency:   idempotency,
		sender:        sender,
		clk:           clk,
	}
}

// DispatchNotifications delivers due outbox jobs. Each job is claimed through
// the sent_at guard before sending, so concurrent sweeps deliver at most once;
// a job another sweep claimed first is skipped silently.
func (u *maintenanceInteractor) DispatchNotifications(ctx context.Context, limit int32) (int, error) {
	now := u.clk.Now()
	due, err := u.notifications.DuePending(ctx, now, limit)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range due {
		claimed, err := u.notifications.MarkSent(ctx, job.ID, now)
		if err != nil {
			return sent, err
		}
		if !claimed {
			continue
		}
		if err := u.sender.Send(ctx, job); err != nil {
			// The claim stands; the job is not retried. Losing a notification
			// beats spamming the recipient on every sweep.
			slog.Error("notification delivery failed",
				"job_id", job.ID, "template", job.TemplateKey, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (u *maintenanceInteractor) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	return u.idempotency.PurgeExpired(ctx, u.clk.Now())
}

// Package notify delivers outbox notification jobs. The current transport is
// the structured log; swapping in a mail provider only touches this package.
package notify

import (
	"context"
	"log/slog"

	"bakehouse/internal/infra/repository"
	"bakehouse/internal/usecase"
)

type LogSender struct {
	logger *slog.Logger
}

func NewLogSender() usecase.NotificationSender {
	return &LogSender{logger: slog.Default()}
}

func (s *LogSender) Send(_ context.Context, job repository.NotificationJob) error {
	s.logger.Info("notification sent",
		"job_id", job.ID,
		"tenant_id", job.TenantID,
		"template", job.TemplateKey,
		"recipient", job.Recipient,
		"payload", string(job.Payload),
	)
	return nil
}

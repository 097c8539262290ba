package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Notification template keys. The outbox stores intent; actual delivery is a
// separate worker concern.
const (
	NotifyOrderReceived     = "order_received"
	NotifyOrderConfirmed    = "order_confirmed"
	NotifyDepositReceived   = "deposit_received"
	NotifyBalanceReceived   = "balance_received"
	NotifyPickupReminder    = "pickup_reminder"
	NotifyQuoteSent         = "quote_sent"
	NotifyQuoteApproved     = "quote_approved"
	NotifyContractSent      = "contract_sent"
	NotifyContractSigned    = "contract_signed"
	NotifyBookingRequested  = "booking_requested"
	NotifyBookingConfirmed  = "booking_confirmed"
)

type NotificationJob struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	TemplateKey string
	Recipient   string
	Payload     json.RawMessage
	RunAt       time.Time
	SentAt      *time.Time
}

// NotificationRepository is a transactional outbox: jobs are enqueued in the
// same transaction as the state change that caused them, so a notification is
// never recorded for a change that rolled back.
type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, tx DBTX, tenantID uuid.UUID, templateKey, recipient string, payload any, runAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return classifyPgErr("failed to encode notification payload", err)
	}

	query := `
		INSERT INTO notification_jobs (id, tenant_id, template_key, recipient, payload, run_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := tx.Exec(ctx, query, uuid.New(), tenantID, templateKey, recipient, body, runAt); err != nil {
		return classifyPgErr("failed to enqueue notification", err)
	}
	return nil
}

// DuePending returns unsent jobs whose run time has arrived, oldest first.
func (r *NotificationRepository) DuePending(ctx context.Context, now time.Time, limit int32) ([]NotificationJob, error) {
	query := `
		SELECT id, tenant_id, template_key, recipient, payload, run_at, sent_at
		FROM notification_jobs
		WHERE sent_at IS NULL AND run_at <= $1
		ORDER BY run_at
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		return nil, classifyPgErr("failed to list pending notifications", err)
	}
	defer rows.Close()

	var out []NotificationJob
	for rows.Next() {
		var job NotificationJob
		if err := rows.Scan(&job.ID, &job.TenantID, &job.TemplateKey, &job.Recipient, &job.Payload, &job.RunAt, &job.SentAt); err != nil {
			return nil, classifyPgErr("failed to scan notification job", err)
		}
		out = append(out, job)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate notification jobs", err)
	}
	return out, nil
}

// MarkSent is guarded on sent_at so concurrent workers deliver at most once.
func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE notification_jobs SET sent_at = $2 WHERE id = $1 AND sent_at IS NULL`
	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return false, classifyPgErr("failed to mark notification sent", err)
	}
	return tag.RowsAffected() > 0, nil
}

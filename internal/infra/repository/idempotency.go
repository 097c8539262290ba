package repository

import (
	"context"
	"time"

	"bakehouse/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Idempotency key lifecycle for public order submission: processing while the
// first request runs, completed once it has a result.
const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	TenantID    uuid.UUID
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

type IdempotencyRepository struct {
	db *pgxpool.Pool
}

func NewIdempotencyRepository(db *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the key. false means another request holds or held it; the
// caller must then compare request hashes and either replay or reject.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tenantID, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	query := `
		INSERT INTO idempotency_keys (tenant_id, key, status, request_hash, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tenant_id, key) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, tenantID, key, IdempotencyProcessing, requestHash, expiresAt)
	if err != nil {
		return false, classifyPgErr("failed to claim idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tenantID, key uuid.UUID) (*IdempotencyRecord, error) {
	query := `
		SELECT key, tenant_id, status, request_hash, result_id, expires_at
		FROM idempotency_keys
		WHERE tenant_id = $1 AND key = $2`

	var rec IdempotencyRecord
	err := r.db.QueryRow(ctx, query, tenantID, key).Scan(
		&rec.Key, &rec.TenantID, &rec.Status, &rec.RequestHash, &rec.ResultID, &rec.ExpiresAt,
	)
	if err != nil {
		return nil, classifyPgErr("failed to get idempotency key", err)
	}
	return &rec, nil
}

// MarkCompleted records the created order so a retried request can replay the
// original response. Runs inside the submission transaction.
func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx DBTX, tenantID, key, resultID uuid.UUID) error {
	query := `
		UPDATE idempotency_keys
		SET status = $3, result_id = $4
		WHERE tenant_id = $1 AND key = $2`

	tag, err := tx.Exec(ctx, query, tenantID, key, IdempotencyCompleted, resultID)
	if err != nil {
		return classifyPgErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "idempotency key not found")
	}
	return nil
}

// Release drops the claim when the first request failed, so a retry can run.
func (r *IdempotencyRepository) Release(ctx context.Context, tenantID, key uuid.UUID) error {
	query := `DELETE FROM idempotency_keys WHERE tenant_id = $1 AND key = $2 AND status = $3`
	if _, err := r.db.Exec(ctx, query, tenantID, key, IdempotencyProcessing); err != nil {
		return classifyPgErr("failed to release idempotency key", err)
	}
	return nil
}

// PurgeExpired is run by the sweeper.
func (r *IdempotencyRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM idempotency_keys WHERE expires_at < $1`, now)
	if err != nil {
		return 0, classifyPgErr("failed to purge idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}

package repository

import (
	"context"
	"time"

	"bakehouse/internal/domain/contract"
	"bakehouse/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContractRepository struct {
	db *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

const contractColumns = `
	id, tenant_id, order_id, status, signing_token, title, body,
	signer_name, signed_at, signer_ip, created_at, updated_at`

func (r *ContractRepository) Create(ctx context.Context, tx DBTX, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (id, tenant_id, order_id, status, signing_token, title, body)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		c.ID(), c.TenantID(), c.OrderID(), c.Status().String(), c.SigningToken(), c.Title(), c.Body(),
	)
	if err != nil {
		return classifyPgErr("failed to create contract", err)
	}
	return nil
}

// Save updates editable fields; a signed row never changes here because of
// the status guard in the statement.
func (r *ContractRepository) Save(ctx context.Context, tx DBTX, c *contract.Contract) error {
	query := `
		UPDATE contracts
		SET status = $2, title = $3, body = $4, updated_at = now()
		WHERE id = $1 AND status <> 'signed'`

	tag, err := tx.Exec(ctx, query, c.ID(), c.Status().String(), c.Title(), c.Body())
	if err != nil {
		return classifyPgErr("failed to save contract", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "contract not found or already signed")
	}
	return nil
}

// Sign records the signature in a single conditional statement so two
// concurrent signers resolve to one winner.
func (r *ContractRepository) Sign(ctx context.Context, tx DBTX, id uuid.UUID, signerName, signerIP string, at time.Time) (bool, error) {
	query := `
		UPDATE contracts
		SET status = 'signed', signer_name = $2, signer_ip = $3, signed_at = $4, updated_at = now()
		WHERE id = $1 AND status = 'sent'`

	tag, err := tx.Exec(ctx, query, id, signerName, signerIP, at)
	if err != nil {
		return false, classifyPgErr("failed to sign contract", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE tenant_id = $1 AND id = $2`
	return r.findOne(ctx, query, tenantID, id)
}

func (r *ContractRepository) FindByOrderID(ctx context.Context, tenantID, orderID uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE tenant_id = $1 AND order_id = $2 ORDER BY created_at DESC LIMIT 1`
	return r.findOne(ctx, query, tenantID, orderID)
}

func (r *ContractRepository) FindByToken(ctx context.Context, token uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE signing_token = $1`
	return r.findOne(ctx, query, token)
}

// SignedForOrder answers the wedding gate question without loading the row.
func (r *ContractRepository) SignedForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var signed bool
	query := `SELECT EXISTS (SELECT 1 FROM contracts WHERE order_id = $1 AND status = 'signed')`
	if err := r.db.QueryRow(ctx, query, orderID).Scan(&signed); err != nil {
		return false, classifyPgErr("failed to check contract signature", err)
	}
	return signed, nil
}

func (r *ContractRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM contracts WHERE tenant_id = $1 AND id = $2 AND status <> 'signed'`
	tag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return classifyPgErr("failed to delete contract", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "contract not found or already signed")
	}
	return nil
}

func (r *ContractRepository) findOne(ctx context.Context, query string, args ...any) (*contract.Contract, error) {
	var (
		p      contract.ReconstructContractParams
		status string
	)
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.TenantID, &p.OrderID, &status, &p.SigningToken, &p.Title, &p.Body,
		&p.SignerName, &p.SignedAt, &p.SignerIP, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, classifyPgErr("failed to get contract", err)
	}
	p.Status = contract.Status(status)
	return contract.ReconstructContract(p), nil
}

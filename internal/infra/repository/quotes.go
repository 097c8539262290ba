package repository

import (
	"context"

	"bakehouse/internal/domain/quote"
	"bakehouse/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteRepository struct {
	db *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{db: db}
}

const quoteColumns = `
	id, tenant_id, order_id, status, approval_token,
	deposit_percentage, valid_until, message,
	subtotal, total_amount, deposit_amount,
	approved_at, created_at, updated_at`

func (r *QuoteRepository) Create(ctx context.Context, tx DBTX, q *quote.Quote) error {
	query := `
		INSERT INTO quotes (
			id, tenant_id, order_id, status, approval_token,
			deposit_percentage, valid_until, message,
			subtotal, total_amount, deposit_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		q.ID(), q.TenantID(), q.OrderID(), q.Status().String(), q.ApprovalToken(),
		q.DepositPercentage(), q.ValidUntil(), q.Message(),
		q.Subtotal(), q.TotalAmount(), q.DepositAmount(),
	)
	if err != nil {
		return classifyPgErr("failed to create quote", err)
	}
	return r.replaceLineItems(ctx, tx, q)
}

// Save persists the header and rewrites the line items wholesale, matching
// how the entity recomputes totals from scratch.
func (r *QuoteRepository) Save(ctx context.Context, tx DBTX, q *quote.Quote) error {
	query := `
		UPDATE quotes
		SET status = $2, deposit_percentage = $3, valid_until = $4, message = $5,
		    subtotal = $6, total_amount = $7, deposit_amount = $8,
		    approved_at = $9, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		q.ID(), q.Status().String(), q.DepositPercentage(), q.ValidUntil(), q.Message(),
		q.Subtotal(), q.TotalAmount(), q.DepositAmount(), q.ApprovedAt(),
	)
	if err != nil {
		return classifyPgErr("failed to save quote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "quote not found")
	}
	return r.replaceLineItems(ctx, tx, q)
}

func (r *QuoteRepository) replaceLineItems(ctx context.Context, tx DBTX, q *quote.Quote) error {
	if _, err := tx.Exec(ctx, `DELETE FROM quote_line_items WHERE quote_id = $1`, q.ID()); err != nil {
		return classifyPgErr("failed to clear quote line items", err)
	}

	query := `
		INSERT INTO quote_line_items (id, quote_id, description, quantity, unit_price, total_price, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, li := range q.LineItems() {
		if _, err := tx.Exec(ctx, query, li.ID, q.ID(), li.Description, li.Quantity, li.UnitPrice, li.TotalPrice, li.SortOrder); err != nil {
			return classifyPgErr("failed to insert quote line item", err)
		}
	}
	return nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE tenant_id = $1 AND id = $2`
	return r.findOne(ctx, query, tenantID, id)
}

func (r *QuoteRepository) FindByOrderID(ctx context.Context, tenantID, orderID uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE tenant_id = $1 AND order_id = $2 ORDER BY created_at DESC LIMIT 1`
	return r.findOne(ctx, query, tenantID, orderID)
}

// FindByToken is the customer-facing lookup; the token itself is the
// authorization, so there is no tenant filter.
func (r *QuoteRepository) FindByToken(ctx context.Context, token uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE approval_token = $1`
	return r.findOne(ctx, query, token)
}

func (r *QuoteRepository) findOne(ctx context.Context, query string, args ...any) (*quote.Quote, error) {
	var (
		p      quote.ReconstructQuoteParams
		status string
	)
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.TenantID, &p.OrderID, &status, &p.ApprovalToken,
		&p.DepositPercentage, &p.ValidUntil, &p.Message,
		&p.Subtotal, &p.TotalAmount, &p.DepositAmount,
		&p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, classifyPgErr("failed to get quote", err)
	}
	p.Status = quote.Status(status)

	items, err := r.lineItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.LineItems = items

	return quote.ReconstructQuote(p), nil
}

func (r *QuoteRepository) lineItems(ctx context.Context, quoteID uuid.UUID) ([]quote.LineItem, error) {
	query := `
		SELECT id, description, quantity, unit_price, total_price, sort_order
		FROM quote_line_items
		WHERE quote_id = $1
		ORDER BY sort_order`

	rows, err := r.db.Query(ctx, query, quoteID)
	if err != nil {
		return nil, classifyPgErr("failed to list quote line items", err)
	}
	defer rows.Close()

	var items []quote.LineItem
	for rows.Next() {
		var li quote.LineItem
		if err := rows.Scan(&li.ID, &li.Description, &li.Quantity, &li.UnitPrice, &li.TotalPrice, &li.SortOrder); err != nil {
			return nil, classifyPgErr("failed to scan quote line item", err)
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate quote line items", err)
	}
	return items, nil
}

// UpdateStatus is the conditional transition used on the approval path so two
// concurrent approvals resolve to a single winner.
func (r *QuoteRepository) UpdateStatus(ctx context.Context, tx DBTX, id uuid.UUID, from, to quote.Status, approvedAt any) (bool, error) {
	query := `
		UPDATE quotes
		SET status = $3, approved_at = COALESCE($4, approved_at), updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, query, id, from.String(), to.String(), approvedAt)
	if err != nil {
		return false, classifyPgErr("failed to update quote status", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete refuses approved and converted quotes at the SQL level as well.
func (r *QuoteRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM quotes WHERE tenant_id = $1 AND id = $2 AND status NOT IN ('approved', 'converted')`
	tag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return classifyPgErr("failed to delete quote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "quote not found or not deletable")
	}
	return nil
}

// ExpireStale flips sent quotes whose validity has lapsed; run by the sweeper.
func (r *QuoteRepository) ExpireStale(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	query := `
		UPDATE quotes
		SET status = 'expired', updated_at = now()
		WHERE tenant_id = $1 AND status = 'sent' AND valid_until IS NOT NULL AND valid_until < now()`

	tag, err := r.db.Exec(ctx, query, tenantID)
	if err != nil {
		return 0, classifyPgErr("failed to expire quotes", err)
	}
	return tag.RowsAffected(), nil
}

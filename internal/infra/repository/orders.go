package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/infra"
	"bakehouse/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `
	id, tenant_id, order_number, order_type, status,
	customer_name, customer_email, customer_phone,
	event_date, pickup_date, pickup_time, backup_pickup_date, backup_pickup_time,
	total_amount, deposit_amount, form_data, notes,
	checkout_session_id, deposit_invoice_id, balance_invoice_id,
	paid_at, deposit_paid_at, completed_at, reminder_sent_at,
	created_at, updated_at`

func (r *OrderRepository) Create(ctx context.Context, tx DBTX, o *order.Order) error {
	formData, err := order.EncodeFormData(o.FormData())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode order form data", err)
	}

	query := `
		INSERT INTO orders (
			id, tenant_id, order_number, order_type, status,
			customer_name, customer_email, customer_phone,
			event_date, pickup_date, pickup_time, backup_pickup_date, backup_pickup_time,
			total_amount, deposit_amount, form_data, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = tx.Exec(ctx, query,
		o.ID(), o.TenantID(), o.OrderNumber(), o.OrderType().String(), o.Status().String(),
		o.Customer().Name, o.Customer().Email, o.Customer().Phone,
		pgDatePtr(o.EventDate()), pgDatePtr(o.PickupDate()), pgTimeOfDayPtr(o.PickupTime()),
		pgDatePtr(o.BackupPickupDate()), pgTimeOfDayPtr(o.BackupPickupTime()),
		o.TotalAmount(), o.DepositAmount(), formData, o.Notes(),
	)
	if err != nil {
		return classifyPgErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *OrderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *OrderRepository) FindByCheckoutSession(ctx context.Context, sessionID string) (*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE checkout_session_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, sessionID))
}

type OrderListFilter struct {
	Status    *order.Status
	OrderType *order.Type
	From      *clock.Date
	To        *clock.Date
	Limit     int32
	Offset    int32
}

func (r *OrderRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, f OrderListFilter) ([]*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1`
	args := []any{tenantID}

	if f.Status != nil {
		args = append(args, f.Status.String())
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.OrderType != nil {
		args = append(args, f.OrderType.String())
		query += fmt.Sprintf(" AND order_type = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, pgDate(*f.From))
		query += fmt.Sprintf(" AND pickup_date >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, pgDate(*f.To))
		query += fmt.Sprintf(" AND pickup_date <= $%d", len(args))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyPgErr("failed to list orders", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// StatusStamp carries the timestamps recorded together with a status change.
// AppendNote, when set, is added to the order's notes in the same statement.
type StatusStamp struct {
	PaidAt        *time.Time
	DepositPaidAt *time.Time
	CompletedAt   *time.Time
	AppendNote    string
}

// UpdateStatus applies a conditional transition in a single statement. It
// returns false without error when the row was not in the expected status,
// which is how duplicate webhook deliveries become no-ops.
func (r *OrderRepository) UpdateStatus(ctx context.Context, tx DBTX, id uuid.UUID, from, to order.Status, stamp StatusStamp) (bool, error) {
	query := `
		UPDATE orders
		SET status = $3,
		    paid_at = COALESCE($4, paid_at),
		    deposit_paid_at = COALESCE($5, deposit_paid_at),
		    completed_at = COALESCE($6, completed_at),
		    notes = CASE
		        WHEN $7 = '' THEN notes
		        WHEN notes = '' THEN $7
		        ELSE notes || E'\n' || $7
		    END,
		    updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, query,
		id, from.String(), to.String(),
		timestampPtr(stamp.PaidAt), timestampPtr(stamp.DepositPaidAt), timestampPtr(stamp.CompletedAt),
		stamp.AppendNote,
	)
	if err != nil {
		return false, classifyPgErr("failed to update order status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) SetCheckoutSession(ctx context.Context, tx DBTX, id uuid.UUID, sessionID string) error {
	query := `UPDATE orders SET checkout_session_id = $2, updated_at = now() WHERE id = $1`
	tag, err := tx.Exec(ctx, query, id, sessionID)
	if err != nil {
		return classifyPgErr("failed to attach checkout session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return nil
}

func (r *OrderRepository) SetDepositInvoice(ctx context.Context, tx DBTX, id uuid.UUID, invoiceID string) error {
	return r.setInvoice(ctx, tx, id, "deposit_invoice_id", invoiceID)
}

func (r *OrderRepository) SetBalanceInvoice(ctx context.Context, tx DBTX, id uuid.UUID, invoiceID string) error {
	return r.setInvoice(ctx, tx, id, "balance_invoice_id", invoiceID)
}

func (r *OrderRepository) setInvoice(ctx context.Context, tx DBTX, id uuid.UUID, column, invoiceID string) error {
	query := fmt.Sprintf(`UPDATE orders SET %s = $2, updated_at = now() WHERE id = $1`, column)
	tag, err := tx.Exec(ctx, query, id, invoiceID)
	if err != nil {
		return classifyPgErr("failed to attach invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return nil
}

func (r *OrderRepository) SetAmounts(ctx context.Context, tx DBTX, id uuid.UUID, total, deposit *int64) error {
	query := `UPDATE orders SET total_amount = $2, deposit_amount = $3, updated_at = now() WHERE id = $1`
	tag, err := tx.Exec(ctx, query, id, total, deposit)
	if err != nil {
		return classifyPgErr("failed to update order amounts", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return nil
}

// DueForReminder returns confirmed orders whose pickup date equals the given
// date and that have not had a reminder recorded yet.
func (r *OrderRepository) DueForReminder(ctx context.Context, tenantID uuid.UUID, pickupDate clock.Date) ([]*order.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1 AND pickup_date = $2
		  AND status IN ('confirmed', 'deposit_paid')
		  AND reminder_sent_at IS NULL
		ORDER BY pickup_time`

	rows, err := r.db.Query(ctx, query, tenantID, pgDate(pickupDate))
	if err != nil {
		return nil, classifyPgErr("failed to list orders due for reminder", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// MarkReminderSent is guarded on reminder_sent_at so concurrent sweeps send
// at most one reminder per order.
func (r *OrderRepository) MarkReminderSent(ctx context.Context, tx DBTX, id uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE orders SET reminder_sent_at = $2, updated_at = now() WHERE id = $1 AND reminder_sent_at IS NULL`
	tag, err := tx.Exec(ctx, query, id, at)
	if err != nil {
		return false, classifyPgErr("failed to mark reminder sent", err)
	}
	return tag.RowsAffected() > 0, nil
}

// NextSequence returns the per-tenant daily sequence used for order numbers.
func (r *OrderRepository) NextSequence(ctx context.Context, tx DBTX, tenantID uuid.UUID, date clock.Date) (int, error) {
	query := `
		INSERT INTO order_number_sequences (tenant_id, seq_date, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, seq_date)
		DO UPDATE SET last_value = order_number_sequences.last_value + 1
		RETURNING last_value`

	var seq int
	if err := tx.QueryRow(ctx, query, tenantID, pgDate(date)).Scan(&seq); err != nil {
		return 0, classifyPgErr("failed to advance order number sequence", err)
	}
	return seq, nil
}

func (r *OrderRepository) scanOne(row pgx.Row) (*order.Order, error) {
	o, err := scanOrderRow(row)
	if err != nil {
		return nil, classifyPgErr("failed to get order", err)
	}
	return o, nil
}

func (r *OrderRepository) scanMany(rows pgx.Rows) ([]*order.Order, error) {
	var out []*order.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, classifyPgErr("failed to scan order row", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate order rows", err)
	}
	return out, nil
}

func scanOrderRow(row pgx.Row) (*order.Order, error) {
	var (
		p                                 order.ReconstructOrderParams
		orderType, status                 string
		eventDate, pickupDate, backupDate pgtype.Date
		pickupTime, backupTime            pgtype.Time
		formData                          json.RawMessage
	)

	err := row.Scan(
		&p.ID, &p.TenantID, &p.OrderNumber, &orderType, &status,
		&p.Customer.Name, &p.Customer.Email, &p.Customer.Phone,
		&eventDate, &pickupDate, &pickupTime, &backupDate, &backupTime,
		&p.TotalAmount, &p.DepositAmount, &formData, &p.Notes,
		&p.CheckoutSessionID, &p.DepositInvoiceID, &p.BalanceInvoiceID,
		&p.PaidAt, &p.DepositPaidAt, &p.CompletedAt, &p.ReminderSentAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Type = order.Type(orderType)
	p.Status = order.Status(status)
	p.EventDate = datePtrFromPg(eventDate)
	p.PickupDate = datePtrFromPg(pickupDate)
	p.PickupTime = timeOfDayPtrFromPg(pickupTime)
	p.BackupPickupDate = datePtrFromPg(backupDate)
	p.BackupPickupTime = timeOfDayPtrFromPg(backupTime)

	if len(formData) > 0 {
		fd, err := order.DecodeFormData(p.Type, formData)
		if err != nil {
			return nil, err
		}
		p.FormData = fd
	}

	return order.ReconstructOrder(p), nil
}

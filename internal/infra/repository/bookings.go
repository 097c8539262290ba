package repository

import (
	"context"
	"time"

	"bakehouse/internal/domain/booking"
	"bakehouse/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `
	id, tenant_id, booking_type_id,
	customer_name, customer_email, customer_phone,
	start_time, end_time, status, notes, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, tx DBTX, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (
			id, tenant_id, booking_type_id,
			customer_name, customer_email, customer_phone,
			start_time, end_time, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		b.ID(), b.TenantID(), b.BookingTypeID(),
		b.CustomerName(), b.CustomerEmail(), b.CustomerPhone(),
		b.StartTime(), b.EndTime(), b.Status().String(), b.Notes(),
	)
	if err != nil {
		return classifyPgErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tenant_id = $1 AND id = $2`
	b, err := scanBookingRow(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, classifyPgErr("failed to get booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE tenant_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, classifyPgErr("failed to list bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, classifyPgErr("failed to scan booking row", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate booking rows", err)
	}
	return out, nil
}

// UpdateStatus applies the confirm/cancel transitions conditionally; false
// means the booking was not in the expected status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx DBTX, id uuid.UUID, from, to booking.Status) (bool, error) {
	query := `UPDATE bookings SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`
	tag, err := tx.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, classifyPgErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanBookingRow(row pgx.Row) (*booking.Booking, error) {
	var (
		id, tenantID, bookingTypeID                 uuid.UUID
		customerName, customerEmail, customerPhone  string
		startTime, endTime, createdAt, updatedAt    time.Time
		status, notes                               string
	)
	err := row.Scan(
		&id, &tenantID, &bookingTypeID,
		&customerName, &customerEmail, &customerPhone,
		&startTime, &endTime, &status, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		id, tenantID, bookingTypeID,
		customerName, customerEmail, customerPhone,
		startTime, endTime,
		booking.Status(status), notes,
		createdAt, updatedAt,
	), nil
}

type BookingTypeRepository struct {
	db *pgxpool.Pool
}

func NewBookingTypeRepository(db *pgxpool.Pool) *BookingTypeRepository {
	return &BookingTypeRepository{db: db}
}

const bookingTypeColumns = `
	id, tenant_id, name, description,
	duration_minutes, buffer_after_minutes, max_bookings_per_day,
	requires_approval, is_active, created_at, updated_at`

func (r *BookingTypeRepository) Create(ctx context.Context, bt *booking.BookingType) error {
	query := `
		INSERT INTO booking_types (
			id, tenant_id, name, description,
			duration_minutes, buffer_after_minutes, max_bookings_per_day,
			requires_approval, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		bt.ID(), bt.TenantID(), bt.Name(), bt.Description(),
		bt.DurationMinutes(), bt.BufferAfterMinutes(), bt.MaxBookingsPerDay(),
		bt.RequiresApproval(), bt.IsActive(),
	)
	if err != nil {
		return classifyPgErr("failed to create booking type", err)
	}
	return nil
}

func (r *BookingTypeRepository) Save(ctx context.Context, bt *booking.BookingType) error {
	query := `
		UPDATE booking_types
		SET name = $2, description = $3,
		    duration_minutes = $4, buffer_after_minutes = $5, max_bookings_per_day = $6,
		    requires_approval = $7, is_active = $8, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		bt.ID(), bt.Name(), bt.Description(),
		bt.DurationMinutes(), bt.BufferAfterMinutes(), bt.MaxBookingsPerDay(),
		bt.RequiresApproval(), bt.IsActive(),
	)
	if err != nil {
		return classifyPgErr("failed to save booking type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking type not found")
	}
	return nil
}

func (r *BookingTypeRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*booking.BookingType, error) {
	query := `SELECT ` + bookingTypeColumns + ` FROM booking_types WHERE tenant_id = $1 AND id = $2`
	bt, err := scanBookingTypeRow(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, classifyPgErr("failed to get booking type", err)
	}
	return bt, nil
}

// List returns all types for staff; activeOnly narrows to what customers see.
func (r *BookingTypeRepository) List(ctx context.Context, tenantID uuid.UUID, activeOnly bool) ([]*booking.BookingType, error) {
	query := `SELECT ` + bookingTypeColumns + ` FROM booking_types WHERE tenant_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, classifyPgErr("failed to list booking types", err)
	}
	defer rows.Close()

	var out []*booking.BookingType
	for rows.Next() {
		bt, err := scanBookingTypeRow(rows)
		if err != nil {
			return nil, classifyPgErr("failed to scan booking type row", err)
		}
		out = append(out, bt)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate booking type rows", err)
	}
	return out, nil
}

func (r *BookingTypeRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM booking_types WHERE tenant_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return classifyPgErr("failed to delete booking type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking type not found")
	}
	return nil
}

func scanBookingTypeRow(row pgx.Row) (*booking.BookingType, error) {
	var (
		id, tenantID                         uuid.UUID
		name, description                    string
		duration, buffer, maxPerDay          int
		requiresApproval, isActive           bool
		createdAt, updatedAt                 time.Time
	)
	err := row.Scan(
		&id, &tenantID, &name, &description,
		&duration, &buffer, &maxPerDay,
		&requiresApproval, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBookingType(
		id, tenantID, name, description,
		duration, buffer, maxPerDay,
		requiresApproval, isActive,
		createdAt, updatedAt,
	), nil
}

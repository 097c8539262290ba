//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"time"

	"bakehouse/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed identities so tests can reference the seeded tenant without plumbing
// IDs around.
var (
	TenantID      = uuid.MustParse("b0000000-0000-0000-0000-000000000001")
	BookingTypeID = uuid.MustParse("b0000000-0000-0000-0000-000000000002")
	AdminEmail    = "admin@example.com"
	AdminPassword = "password123"
)

// SeedReferenceData inserts the tenant, its admin user, pricing/lead-time
// settings and a full week of availability windows. Everything here is
// reference data that ResetDB leaves in place.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx,
		`INSERT INTO tenants (id, name, slug) VALUES ($1, 'Test Bakehouse', 'test-bakehouse')`,
		TenantID); err != nil {
		return fmt.Errorf("seed tenant: %w", err)
	}

	hash, err := password.HashPassword(AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO users (id, tenant_id, email, password_hash, role) VALUES ($1, $2, $3, $4, 'admin')`,
		uuid.New(), TenantID, AdminEmail, hash); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	settings := map[string]string{
		"slot_interval_minutes":  "30",
		"default_slot_capacity":  "2",
		"default_lead_time_days": "2",
		"lead_time_days.wedding": "14",
		"price.cookies":          "4500",
		"price.cookie_cups":      "3600",
	}
	for key, value := range settings {
		if _, err := pool.Exec(ctx,
			`INSERT INTO tenant_settings (tenant_id, key, value) VALUES ($1, $2, $3)`,
			TenantID, key, value); err != nil {
			return fmt.Errorf("seed setting %s: %w", key, err)
		}
	}

	// Open every weekday for both kinds so tests can pick pickup dates
	// relative to the wall clock without caring which weekday they land on.
	for _, kind := range []string{"bakery", "consulting"} {
		for weekday := range 7 {
			if _, err := pool.Exec(ctx,
				`INSERT INTO availability_windows (id, tenant_id, service_kind, weekday, start_time, end_time)
				 VALUES ($1, $2, $3, $4, '09:00', '17:00')`,
				uuid.New(), TenantID, kind, weekday); err != nil {
				return fmt.Errorf("seed availability window: %w", err)
			}
		}
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO booking_types (id, tenant_id, name, duration_minutes, buffer_after_minutes, max_bookings_per_day)
		 VALUES ($1, $2, 'Wedding consultation', 60, 30, 2)`,
		BookingTypeID, TenantID); err != nil {
		return fmt.Errorf("seed booking type: %w", err)
	}

	return nil
}

// ResetDB truncates everything tests mutate and leaves the reference data
// from SeedReferenceData alone. Called between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE
			quote_line_items, quotes, contracts, bookings,
			orders, order_number_sequences,
			idempotency_keys, notification_jobs,
			pickup_slot_capacities, blackout_dates, availability_overrides
		CASCADE`)
	if err != nil {
		return fmt.Errorf("reset database: %w", err)
	}
	return nil
}

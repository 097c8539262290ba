package repository

import (
	"context"
	"time"

	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/infra"
	"bakehouse/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CalendarRepository owns the availability rule tables: weekly windows,
// date overrides, blackout dates and per-slot capacity overrides.
type CalendarRepository struct {
	db *pgxpool.Pool
}

func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// LoadRules gathers everything the engine needs for one kind and date range.
// Windows are weekly so they are not range-filtered; the dated tables are.
func (r *CalendarRepository) LoadRules(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, from, to clock.Date) (schedule.Rules, error) {
	var rules schedule.Rules

	windows, err := r.ListWindows(ctx, tenantID, kind)
	if err != nil {
		return rules, err
	}
	rules.Windows = windows

	overrides, err := r.listOverrides(ctx, tenantID, kind, from, to)
	if err != nil {
		return rules, err
	}
	rules.Overrides = overrides

	if kind == schedule.KindBakery {
		blackouts, err := r.listBlackouts(ctx, tenantID, &from, &to)
		if err != nil {
			return rules, err
		}
		rules.Blackouts = blackouts

		capacities, err := r.listCapacities(ctx, tenantID, from, to)
		if err != nil {
			return rules, err
		}
		rules.CapacityOverrides = capacities
	}

	return rules, nil
}

func (r *CalendarRepository) ListWindows(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind) ([]schedule.Window, error) {
	query := `
		SELECT id, weekday, start_time, end_time, is_active
		FROM availability_windows
		WHERE tenant_id = $1 AND service_kind = $2
		ORDER BY weekday, start_time`

	rows, err := r.db.Query(ctx, query, tenantID, string(kind))
	if err != nil {
		return nil, classifyPgErr("failed to list availability windows", err)
	}
	defer rows.Close()

	var out []schedule.Window
	for rows.Next() {
		var (
			w          schedule.Window
			weekday    int
			start, end pgtype.Time
		)
		if err := rows.Scan(&w.ID, &weekday, &start, &end, &w.IsActive); err != nil {
			return nil, classifyPgErr("failed to scan availability window", err)
		}
		w.Weekday = time.Weekday(weekday)
		w.Start = timeOfDayFromPg(start)
		w.End = timeOfDayFromPg(end)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate availability windows", err)
	}
	return out, nil
}

type WindowParams struct {
	Weekday  int
	Start    clock.TimeOfDay
	End      clock.TimeOfDay
	IsActive bool
}

func (r *CalendarRepository) CreateWindow(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, p WindowParams) (uuid.UUID, error) {
	id := uuid.New()
	query := `
		INSERT INTO availability_windows (id, tenant_id, service_kind, weekday, start_time, end_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query, id, tenantID, string(kind), p.Weekday, pgTimeOfDay(p.Start), pgTimeOfDay(p.End), p.IsActive)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create availability window", err)
	}
	return id, nil
}

func (r *CalendarRepository) UpdateWindow(ctx context.Context, tenantID, id uuid.UUID, p WindowParams) error {
	query := `
		UPDATE availability_windows
		SET weekday = $3, start_time = $4, end_time = $5, is_active = $6, updated_at = now()
		WHERE tenant_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, tenantID, id, p.Weekday, pgTimeOfDay(p.Start), pgTimeOfDay(p.End), p.IsActive)
	if err != nil {
		return classifyPgErr("failed to update availability window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "availability window not found")
	}
	return nil
}

func (r *CalendarRepository) DeleteWindow(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM availability_windows WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return classifyPgErr("failed to delete availability window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "availability window not found")
	}
	return nil
}

func (r *CalendarRepository) listOverrides(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, from, to clock.Date) ([]schedule.Override, error) {
	query := `
		SELECT id, override_date, is_available, start_time, end_time
		FROM availability_overrides
		WHERE tenant_id = $1 AND service_kind = $2 AND override_date BETWEEN $3 AND $4
		ORDER BY override_date`

	rows, err := r.db.Query(ctx, query, tenantID, string(kind), pgDate(from), pgDate(to))
	if err != nil {
		return nil, classifyPgErr("failed to list availability overrides", err)
	}
	defer rows.Close()

	var out []schedule.Override
	for rows.Next() {
		var (
			o          schedule.Override
			date       pgtype.Date
			start, end pgtype.Time
		)
		if err := rows.Scan(&o.ID, &date, &o.Available, &start, &end); err != nil {
			return nil, classifyPgErr("failed to scan availability override", err)
		}
		o.Date = dateFromPg(date)
		o.Start = timeOfDayPtrFromPg(start)
		o.End = timeOfDayPtrFromPg(end)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate availability overrides", err)
	}
	return out, nil
}

type OverrideParams struct {
	Date      clock.Date
	Available bool
	Start     *clock.TimeOfDay
	End       *clock.TimeOfDay
}

// UpsertOverride keeps at most one override per (kind, date); a second write
// for the same date replaces the first.
func (r *CalendarRepository) UpsertOverride(ctx context.Context, tenantID uuid.UUID, kind schedule.ServiceKind, p OverrideParams) (uuid.UUID, error) {
	id := uuid.New()
	query := `
		INSERT INTO availability_overrides (id, tenant_id, service_kind, override_date, is_available, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, service_kind, override_date)
		DO UPDATE SET is_available = EXCLUDED.is_available,
		              start_time = EXCLUDED.start_time,
		              end_time = EXCLUDED.end_time,
		              updated_at = now()
		RETURNING id`

	err := r.db.QueryRow(ctx, query, id, tenantID, string(kind), pgDate(p.Date), p.Available, pgTimeOfDayPtr(p.Start), pgTimeOfDayPtr(p.End)).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to upsert availability override", err)
	}
	return id, nil
}

func (r *CalendarRepository) DeleteOverride(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM availability_overrides WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return classifyPgErr("failed to delete availability override", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "availability override not found")
	}
	return nil
}

func (r *CalendarRepository) listBlackouts(ctx context.Context, tenantID uuid.UUID, from, to *clock.Date) ([]schedule.Blackout, error) {
	query := `SELECT id, blackout_date, reason FROM blackout_dates WHERE tenant_id = $1`
	args := []any{tenantID}
	if from != nil && to != nil {
		query += ` AND blackout_date BETWEEN $2 AND $3`
		args = append(args, pgDate(*from), pgDate(*to))
	}
	query += ` ORDER BY blackout_date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyPgErr("failed to list blackout dates", err)
	}
	defer rows.Close()

	var out []schedule.Blackout
	for rows.Next() {
		var (
			b    schedule.Blackout
			date pgtype.Date
		)
		if err := rows.Scan(&b.ID, &date, &b.Reason); err != nil {
			return nil, classifyPgErr("failed to scan blackout date", err)
		}
		b.Date = dateFromPg(date)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate blackout dates", err)
	}
	return out, nil
}

func (r *CalendarRepository) ListBlackouts(ctx context.Context, tenantID uuid.UUID) ([]schedule.Blackout, error) {
	return r.listBlackouts(ctx, tenantID, nil, nil)
}

func (r *CalendarRepository) CreateBlackout(ctx context.Context, tenantID uuid.UUID, date clock.Date, reason string) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO blackout_dates (id, tenant_id, blackout_date, reason) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, query, id, tenantID, pgDate(date), reason); err != nil {
		return uuid.Nil, classifyPgErr("failed to create blackout date", err)
	}
	return id, nil
}

func (r *CalendarRepository) DeleteBlackout(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blackout_dates WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return classifyPgErr("failed to delete blackout date", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "blackout date not found")
	}
	return nil
}

func (r *CalendarRepository) listCapacities(ctx context.Context, tenantID uuid.UUID, from, to clock.Date) ([]schedule.CapacityOverride, error) {
	query := `
		SELECT slot_date, slot_time, capacity
		FROM pickup_slot_capacities
		WHERE tenant_id = $1 AND slot_date BETWEEN $2 AND $3`

	rows, err := r.db.Query(ctx, query, tenantID, pgDate(from), pgDate(to))
	if err != nil {
		return nil, classifyPgErr("failed to list slot capacities", err)
	}
	defer rows.Close()

	var out []schedule.CapacityOverride
	for rows.Next() {
		var (
			c    schedule.CapacityOverride
			date pgtype.Date
			t    pgtype.Time
		)
		if err := rows.Scan(&date, &t, &c.Capacity); err != nil {
			return nil, classifyPgErr("failed to scan slot capacity", err)
		}
		c.Date = dateFromPg(date)
		c.Time = timeOfDayFromPg(t)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate slot capacities", err)
	}
	return out, nil
}

func (r *CalendarRepository) UpsertCapacity(ctx context.Context, tenantID uuid.UUID, c schedule.CapacityOverride) error {
	query := `
		INSERT INTO pickup_slot_capacities (tenant_id, slot_date, slot_time, capacity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id, slot_date, slot_time)
		DO UPDATE SET capacity = EXCLUDED.capacity, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, tenantID, pgDate(c.Date), pgTimeOfDay(c.Time), c.Capacity); err != nil {
		return classifyPgErr("failed to upsert slot capacity", err)
	}
	return nil
}

func (r *CalendarRepository) DeleteCapacity(ctx context.Context, tenantID uuid.UUID, date clock.Date, t clock.TimeOfDay) error {
	query := `DELETE FROM pickup_slot_capacities WHERE tenant_id = $1 AND slot_date = $2 AND slot_time = $3`
	tag, err := r.db.Exec(ctx, query, tenantID, pgDate(date), pgTimeOfDay(t))
	if err != nil {
		return classifyPgErr("failed to delete slot capacity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot capacity not found")
	}
	return nil
}

package repository

import (
	"context"
	"strconv"
	"strings"

	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository folds a tenant's key/value settings rows into the typed
// snapshot the rest of the request works with. Unknown keys and unparsable
// values are skipped so one bad row never breaks availability.
type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const (
	settingSlotInterval    = "slot_interval_minutes"
	settingSlotCapacity    = "default_slot_capacity"
	settingLeadTimeDefault = "default_lead_time_days"
	settingReminderOffset  = "reminder_offset_days"
	settingCountPending    = "count_pending_as_committed"
	settingLeadTimePrefix  = "lead_time_days."
	settingPricePrefix     = "price."
)

func (r *SettingsRepository) TenantConfig(ctx context.Context, tenantID uuid.UUID) (schedule.TenantConfig, error) {
	cfg := schedule.DefaultTenantConfig()

	rows, err := r.db.Query(ctx, `SELECT key, value FROM tenant_settings WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return cfg, classifyPgErr("failed to load tenant settings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return cfg, classifyPgErr("failed to scan tenant setting", err)
		}
		applySetting(&cfg, key, value)
	}
	if err := rows.Err(); err != nil {
		return cfg, classifyPgErr("failed to iterate tenant settings", err)
	}
	return cfg, nil
}

func applySetting(cfg *schedule.TenantConfig, key, value string) {
	switch {
	case key == settingSlotInterval:
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			cfg.SlotIntervalMinutes = n
		}
	case key == settingSlotCapacity:
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			cfg.DefaultSlotCapacity = n
		}
	case key == settingLeadTimeDefault:
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			cfg.DefaultLeadTimeDays = n
		}
	case key == settingReminderOffset:
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			cfg.ReminderOffsetDays = n
		}
	case key == settingCountPending:
		if b, err := strconv.ParseBool(value); err == nil {
			cfg.CountPendingAsCommitted = b
		}
	case strings.HasPrefix(key, settingLeadTimePrefix):
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			cfg.LeadTimes[strings.TrimPrefix(key, settingLeadTimePrefix)] = n
		}
	case strings.HasPrefix(key, settingPricePrefix):
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n >= 0 {
			cfg.Prices[strings.TrimPrefix(key, settingPricePrefix)] = n
		}
	}
}

func (r *SettingsRepository) Upsert(ctx context.Context, tenantID uuid.UUID, key, value string) error {
	query := `
		INSERT INTO tenant_settings (tenant_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, tenantID, key, value); err != nil {
		return classifyPgErr("failed to upsert tenant setting", err)
	}
	return nil
}

func (r *SettingsRepository) Delete(ctx context.Context, tenantID uuid.UUID, key string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tenant_settings WHERE tenant_id = $1 AND key = $2`, tenantID, key)
	if err != nil {
		return classifyPgErr("failed to delete tenant setting", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "tenant setting not found")
	}
	return nil
}

func (r *SettingsRepository) List(ctx context.Context, tenantID uuid.UUID) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value FROM tenant_settings WHERE tenant_id = $1 ORDER BY key`, tenantID)
	if err != nil {
		return nil, classifyPgErr("failed to list tenant settings", err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, classifyPgErr("failed to scan tenant setting", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to iterate tenant settings", err)
	}
	return out, nil
}

package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"bakehouse/internal/pkg/config"
	"bakehouse/internal/usecase"

	"go.uber.org/fx"
)

var MaintenanceModule = fx.Module("maintenance",
	fx.Invoke(startMaintenanceSweeper),
)

// startMaintenanceSweeper runs the housekeeping loop for the process
// lifetime: each tick drains due notifications and purges expired
// idempotency keys. Errors are logged and the loop keeps going.
func startMaintenanceSweeper(lc fx.Lifecycle, m usecase.MaintenanceUsecase, cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Maintenance.Interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						runMaintenance(ctx, m, cfg.Maintenance.DispatchBatch)
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func runMaintenance(ctx context.Context, m usecase.MaintenanceUsecase, batch int32) {
	sent, err := m.DispatchNotifications(ctx, batch)
	if err != nil {
		slog.Error("notification dispatch sweep failed", "error", err)
	} else if sent > 0 {
		slog.Info("notification dispatch sweep", "sent", sent)
	}

	purged, err := m.PurgeIdempotencyKeys(ctx)
	if err != nil {
		slog.Error("idempotency key purge failed", "error", err)
	} else if purged > 0 {
		slog.Info("idempotency key purge", "purged", purged)
	}
}

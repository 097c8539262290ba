package components

import (
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/notify"
	repo_impl "bakehouse/internal/infra/repository"
	"bakehouse/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			db.NewTxRunner,
			fx.As(new(usecase.TxRunner)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepo)),
		),
		fx.Annotate(
			repo_impl.NewQuoteRepository,
			fx.As(new(usecase.QuoteRepo)),
		),
		fx.Annotate(
			repo_impl.NewContractRepository,
			fx.As(new(usecase.ContractRepo)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepo)),
		),
		fx.Annotate(
			repo_impl.NewBookingTypeRepository,
			fx.As(new(usecase.BookingTypeRepo)),
		),
		fx.Annotate(
			repo_impl.NewCalendarRepository,
			fx.As(new(usecase.CalendarRepo)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(usecase.SettingsRepo)),
		),
		fx.Annotate(
			repo_impl.NewCommitmentRepository,
			fx.As(new(usecase.CommitmentRepo)),
		),
		fx.Annotate(
			repo_impl.NewIdempotencyRepository,
			fx.As(new(usecase.IdempotencyRepo)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(usecase.NotificationRepo)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepo)),
		),
		notify.NewLogSender,
	),
)

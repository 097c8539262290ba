package components

import (
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUsecase,
		usecase.NewAvailabilityUsecase,
		usecase.NewOrderUsecase,
		usecase.NewPaymentUsecase,
		usecase.NewQuoteUsecase,
		usecase.NewContractUsecase,
		usecase.NewBookingUsecase,
		usecase.NewCalendarUsecase,
		usecase.NewMaintenanceUsecase,
	),
)

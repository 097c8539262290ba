package components

import (
	"bakehouse/internal/handler"
	"bakehouse/internal/handler/api"
	"bakehouse/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewOrderHandler,
		api.NewQuoteHandler,
		api.NewContractHandler,
		api.NewBookingHandler,
		api.NewCalendarHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	availability *api.AvailabilityHandler,
	order *api.OrderHandler,
	quote *api.QuoteHandler,
	contract *api.ContractHandler,
	booking *api.BookingHandler,
	calendar *api.CalendarHandler,
	webhook *api.WebhookHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Availability: availability,
		Order:        order,
		Quote:        quote,
		Contract:     contract,
		Booking:      booking,
		Calendar:     calendar,
		Webhook:      webhook,
	}
}

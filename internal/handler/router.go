package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bakehouse/internal/domain/user"
	"bakehouse/internal/handler/api"
	"bakehouse/internal/handler/middleware"
	"bakehouse/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Availability *api.AvailabilityHandler
	Order        *api.OrderHandler
	Quote        *api.QuoteHandler
	Contract     *api.ContractHandler
	Booking      *api.BookingHandler
	Calendar     *api.CalendarHandler
	Webhook      *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// The provider signs webhook payloads; no tenant header or session here.
	engine.POST("/webhooks/payment", h.Webhook.HandlePaymentEvent)

	apiGroup := engine.Group("/api")
	{
		// Customer-token routes: the opaque token in the path is the whole
		// authorization, so neither tenant header nor auth applies.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/quotes/:token", Handler: h.Quote.ViewByToken},
			{Method: http.MethodPost, Path: "/quotes/:token/approve", Handler: h.Quote.Approve},
			{Method: http.MethodGet, Path: "/contracts/:token", Handler: h.Contract.ViewByToken},
			{Method: http.MethodPost, Path: "/contracts/:token/sign", Handler: h.Contract.Sign},
		})

		tenantGroup := apiGroup.Group("")
		tenantGroup.Use(middleware.RequireTenant())
		{
			auth := tenantGroup.Group("/auth")
			{
				addRoutes(auth, []route{
					{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
					{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				})

				authRequired := auth.Group("")
				authRequired.Use(authMiddleware.RequireAuth())
				addRoutes(authRequired, []route{
					{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				})
			}

			// Public storefront surface.
			addRoutes(tenantGroup, []route{
				{Method: http.MethodGet, Path: "/availability/pickup", Handler: h.Availability.PickupSlots},
				{Method: http.MethodGet, Path: "/availability/consulting", Handler: h.Availability.ConsultingSlots},
				{Method: http.MethodPost, Path: "/orders", Handler: h.Order.Submit},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/booking-types", Handler: h.Booking.ListTypes},
			})

			staff := tenantGroup.Group("/staff")
			staff.Use(authMiddleware.RequireAuth())
			{
				addRoutes(staff, []route{
					{Method: http.MethodGet, Path: "/orders", Handler: h.Order.List},
					{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},
					{Method: http.MethodPost, Path: "/orders/:id/complete", Handler: h.Order.Complete},
					{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: h.Order.Cancel},
					{Method: http.MethodPost, Path: "/orders/:id/balance-invoice", Handler: h.Order.SendBalanceInvoice},
					{Method: http.MethodPost, Path: "/orders/reminders/sweep", Handler: h.Order.ReminderSweep},
					{Method: http.MethodGet, Path: "/orders/:id/quote", Handler: h.Quote.GetByOrder},
					{Method: http.MethodGet, Path: "/orders/:id/contract", Handler: h.Contract.GetByOrder},

					{Method: http.MethodPost, Path: "/quotes", Handler: h.Quote.Create},
					{Method: http.MethodGet, Path: "/quotes/:id", Handler: h.Quote.Get},
					{Method: http.MethodPatch, Path: "/quotes/:id", Handler: h.Quote.Update},
					{Method: http.MethodPost, Path: "/quotes/:id/send", Handler: h.Quote.Send},
					{Method: http.MethodDelete, Path: "/quotes/:id", Handler: h.Quote.Delete},
					{Method: http.MethodPost, Path: "/quotes/expire/sweep", Handler: h.Quote.ExpireSweep},

					{Method: http.MethodPost, Path: "/contracts", Handler: h.Contract.Create},
					{Method: http.MethodGet, Path: "/contracts/:id", Handler: h.Contract.Get},
					{Method: http.MethodPatch, Path: "/contracts/:id", Handler: h.Contract.Update},
					{Method: http.MethodPost, Path: "/contracts/:id/send", Handler: h.Contract.Send},
					{Method: http.MethodDelete, Path: "/contracts/:id", Handler: h.Contract.Delete},

					{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
					{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
					{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: h.Booking.Confirm},
					{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel},
				})

				admin := staff.Group("")
				admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
				addRoutes(admin, []route{
					{Method: http.MethodPost, Path: "/booking-types", Handler: h.Booking.CreateType},
					{Method: http.MethodPatch, Path: "/booking-types/:id", Handler: h.Booking.UpdateType},
					{Method: http.MethodDelete, Path: "/booking-types/:id", Handler: h.Booking.DeleteType},

					{Method: http.MethodGet, Path: "/calendar/blackouts", Handler: h.Calendar.ListBlackouts},
					{Method: http.MethodPost, Path: "/calendar/blackouts", Handler: h.Calendar.CreateBlackout},
					{Method: http.MethodDelete, Path: "/calendar/blackouts/:id", Handler: h.Calendar.DeleteBlackout},
					{Method: http.MethodPut, Path: "/calendar/capacities", Handler: h.Calendar.UpsertCapacity},
					{Method: http.MethodDelete, Path: "/calendar/capacities", Handler: h.Calendar.DeleteCapacity},
					{Method: http.MethodDelete, Path: "/calendar/overrides/:id", Handler: h.Calendar.DeleteOverride},
					{Method: http.MethodGet, Path: "/calendar/:kind/windows", Handler: h.Calendar.ListWindows},
					{Method: http.MethodPost, Path: "/calendar/:kind/windows", Handler: h.Calendar.CreateWindow},
					{Method: http.MethodPut, Path: "/calendar/:kind/windows/:id", Handler: h.Calendar.UpdateWindow},
					{Method: http.MethodDelete, Path: "/calendar/:kind/windows/:id", Handler: h.Calendar.DeleteWindow},
					{Method: http.MethodPut, Path: "/calendar/:kind/overrides", Handler: h.Calendar.UpsertOverride},

					{Method: http.MethodGet, Path: "/settings", Handler: h.Calendar.GetSettings},
					{Method: http.MethodPut, Path: "/settings/:key", Handler: h.Calendar.PutSetting},
					{Method: http.MethodDelete, Path: "/settings/:key", Handler: h.Calendar.DeleteSetting},
				})
			}
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"bakehouse/internal/domain/order"
	reqdto "bakehouse/internal/handler/dto/request"
	resdto "bakehouse/internal/handler/dto/response"
	"bakehouse/internal/infra/payment"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orders usecase.OrderUsecase
}

func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// @Summary Submit order
// @Description Create an order from the public form; retried requests with the same Idempotency-Key replay the original result
// @Tags orders
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.SubmitOrderRequest true "Order form"
// @Success 201 {object} resdto.SubmitOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Submit(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	key, err := uuid.Parse(c.GetHeader("Idempotency-Key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key header must be a UUID"})
		return
	}

	var req reqdto.SubmitOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.IdempotencyKey = key

	result, err := h.orders.Submit(c.Request.Context(), tenant, input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownOrderType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order type"})
		case errors.Is(err, usecase.ErrLeadTimeViolation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pickup date is inside the lead-time window"})
		case errors.Is(err, usecase.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Requested pickup slot is not available"})
		case errors.Is(err, usecase.ErrPriceNotConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No price configured for this order type"})
		case errors.Is(err, usecase.ErrIdempotencyMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": "Idempotency key was used with a different request"})
		case errors.Is(err, usecase.ErrIdempotencyInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "Request is currently being processed"})
		case errors.Is(err, order.ErrMissingContact), errors.Is(err, order.ErrMissingPickupSlot):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, payment.ErrGatewayUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable, try again"})
		default:
			respondRepoErr(c, err)
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.SubmitOrderResponse{
		Order:       resdto.FromOrder(result.Order),
		CheckoutURL: result.CheckoutURL,
	})
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	o, err := h.orders.Get(c.Request.Context(), tenant, id)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(o))
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param order_type query string false "Filter by order type"
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var filter repository.OrderListFilter
	if s := c.Query("status"); s != "" {
		status := order.Status(s)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		filter.Status = &status
	}
	if s := c.Query("order_type"); s != "" {
		orderType := order.Type(s)
		if !orderType.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order type"})
			return
		}
		filter.OrderType = &orderType
	}
	if s := c.Query("from"); s != "" {
		d, err := clock.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		filter.From = &d
	}
	if s := c.Query("to"); s != "" {
		d, err := clock.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		filter.To = &d
	}
	if s := c.Query("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		filter.Limit = int32(n)
	}
	if s := c.Query("offset"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		filter.Offset = int32(n)
	}

	orders, err := h.orders.List(c.Request.Context(), tenant, filter)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

// @Summary Complete order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/complete [post]
func (h *OrderHandler) Complete(c *gin.Context) {
	h.applyStaffAction(c, h.orders.Complete)
}

// @Summary Cancel order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.applyStaffAction(c, h.orders.Cancel)
}

// @Summary Send balance invoice
// @Description Create the balance invoice for a deposit-paid order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/balance-invoice [post]
func (h *OrderHandler) SendBalanceInvoice(c *gin.Context) {
	h.applyStaffAction(c, h.orders.SendBalanceInvoice)
}

func (h *OrderHandler) applyStaffAction(c *gin.Context, action func(ctx context.Context, tenant, id uuid.UUID) (*order.Order, error)) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	o, err := action(c.Request.Context(), tenant, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Order cannot move to the requested status"})
		case errors.Is(err, payment.ErrGatewayUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable, try again"})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(o))
}

// @Summary Run pickup reminder sweep
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /orders/reminders/sweep [post]
func (h *OrderHandler) ReminderSweep(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	sent, err := h.orders.ReminderSweep(c.Request.Context(), tenant)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders_sent": sent})
}

package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"bakehouse/internal/infra"
	"bakehouse/internal/infra/payment"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/config"
	"bakehouse/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20 // 1 MiB

// WebhookHandler receives payment provider events. The response code is the
// contract with the provider's retry loop: 2xx stops redelivery, anything
// else schedules another attempt.
type WebhookHandler struct {
	payments  usecase.PaymentUsecase
	secret    string
	tolerance time.Duration
	clk       clock.Clock
}

func NewWebhookHandler(payments usecase.PaymentUsecase, cfg config.Config, clk clock.Clock) *WebhookHandler {
	return &WebhookHandler{
		payments:  payments,
		secret:    cfg.Payment.WebhookSecret,
		tolerance: cfg.Payment.SignatureTolerance,
		clk:       clk,
	}
}

// @Summary Payment webhook
// @Description Receive signed payment provider events
// @Tags webhooks
// @Accept json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable body"})
		return
	}

	sigHeader := c.GetHeader("Payment-Signature")
	if err := payment.VerifySignature(body, sigHeader, h.secret, h.tolerance, h.clk.Now()); err != nil {
		slog.Warn("rejected webhook with bad signature", "error", err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	ev, err := payment.ParseEvent(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event"})
		return
	}

	if err := h.payments.Process(c.Request.Context(), ev); err != nil {
		switch {
		case errors.Is(err, usecase.ErrContractNotSigned):
			// Non-2xx on purpose: the provider redelivers after signing.
			c.JSON(http.StatusConflict, gin.H{"error": "Contract not signed yet"})
		case infra.IsKind(err, infra.KindNotFound):
			// An event for an order we never created will not resolve on
			// retry either; acknowledge and log.
			slog.Warn("webhook event references unknown order", "event_id", ev.ID, "type", ev.Type)
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Processing failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package api

import (
	"errors"
	"net/http"

	"bakehouse/internal/domain/quote"
	"bakehouse/internal/handler/dto/request"
	"bakehouse/internal/handler/dto/response"
	"bakehouse/internal/infra"
	"bakehouse/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quotes usecase.QuoteUsecase
}

func NewQuoteHandler(quotes usecase.QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// @Summary Create quote
// @Description Draft a quote for a quote-priced order
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body request.CreateQuoteRequest true "Quote"
// @Success 201 {object} response.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /staff/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	var req request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	q, err := h.quotes.Create(c.Request.Context(), tenant, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotQuotable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Order type is not quote-priced"})
		case errors.Is(err, quote.ErrInvalidPercentage),
			errors.Is(err, quote.ErrEmptyDescription),
			errors.Is(err, quote.ErrInvalidQuantity),
			errors.Is(err, quote.ErrNegativeUnitPrice):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// @Summary Update quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.UpdateQuoteRequest true "Changes"
// @Success 200 {object} response.QuoteResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /staff/quotes/{id} [patch]
func (h *QuoteHandler) Update(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	q, err := h.quotes.Update(c.Request.Context(), tenant, id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrNotEditable):
			c.JSON(http.StatusConflict, gin.H{"error": "Quote can no longer be edited"})
		case errors.Is(err, quote.ErrInvalidPercentage),
			errors.Is(err, quote.ErrEmptyDescription),
			errors.Is(err, quote.ErrInvalidQuantity),
			errors.Is(err, quote.ErrNegativeUnitPrice):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// @Summary Send quote
// @Description Issue the quote to the customer with an approval link
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.QuoteResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /staff/quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	q, err := h.quotes.Send(c.Request.Context(), tenant, id)
	if err != nil {
		if errors.Is(err, quote.ErrNotEditable) {
			c.JSON(http.StatusConflict, gin.H{"error": "Quote cannot be sent from its current status"})
			return
		}
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// @Summary Get quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	q, err := h.quotes.Get(c.Request.Context(), tenant, id)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// @Summary Get quote for order
// @Tags quotes
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/orders/{id}/quote [get]
func (h *QuoteHandler) GetByOrder(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	q, err := h.quotes.GetByOrder(c.Request.Context(), tenant, orderID)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// @Summary Delete quote
// @Tags quotes
// @Param id path string true "Quote ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /staff/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.quotes.Delete(c.Request.Context(), tenant, id); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Approved quotes cannot be deleted"})
			return
		}
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Run quote expiry sweep
// @Description Expire sent quotes whose validity window has lapsed
// @Tags quotes
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /staff/quotes/expire/sweep [post]
func (h *QuoteHandler) ExpireSweep(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	expired, err := h.quotes.ExpireStale(c.Request.Context(), tenant)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes_expired": expired})
}

// ViewByToken serves the customer-facing quote page. The token is the
// authorization; there is no tenant header on this route.
//
// @Summary View quote by approval token
// @Tags quotes
// @Produce json
// @Param token path string true "Approval token"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} map[string]string
// @Router /quotes/{token} [get]
func (h *QuoteHandler) ViewByToken(c *gin.Context) {
	token, ok := pathUUID(c, "token")
	if !ok {
		return
	}

	q, err := h.quotes.GetByToken(c.Request.Context(), token)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// @Summary Approve quote
// @Description Customer accepts the quote; returns the deposit invoice link
// @Tags quotes
// @Produce json
// @Param token path string true "Approval token"
// @Success 200 {object} response.QuoteApprovalResponse
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /quotes/{token}/approve [post]
func (h *QuoteHandler) Approve(c *gin.Context) {
	token, ok := pathUUID(c, "token")
	if !ok {
		return
	}

	res, err := h.quotes.ApproveByToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrExpired):
			c.JSON(http.StatusGone, gin.H{"error": "Quote has expired"})
		case errors.Is(err, quote.ErrNotSent), errors.Is(err, usecase.ErrQuoteNotApproved):
			c.JSON(http.StatusConflict, gin.H{"error": "Quote is not awaiting approval"})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, response.QuoteApprovalResponse{
		Quote:             response.FromQuote(res.Quote),
		DepositInvoiceURL: res.DepositInvoiceURL,
	})
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"bakehouse/internal/domain/booking"
	"bakehouse/internal/handler/dto/request"
	"bakehouse/internal/handler/dto/response"
	"bakehouse/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings usecase.BookingUsecase
}

func NewBookingHandler(bookings usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// @Summary Book appointment
// @Description Customer books a consulting slot; approval-gated types start pending
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.CreateBookingRequest true "Booking"
// @Success 201 {object} response.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	b, err := h.bookings.Create(c.Request.Context(), tenant, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Requested slot is no longer available"})
		case errors.Is(err, booking.ErrMissingContact):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(b))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	b, err := h.bookings.Get(c.Request.Context(), tenant, id)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param from query string false "Start date (2006-01-02)"
// @Param to query string false "End date (2006-01-02)"
// @Success 200 {array} response.BookingResponse
// @Security BearerAuth
// @Router /staff/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c, 30)
	if !ok {
		return
	}

	bookings, err := h.bookings.List(c.Request.Context(), tenant, from, to)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// @Summary Confirm booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /staff/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.applyStatus(c, h.bookings.Confirm)
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /staff/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.applyStatus(c, h.bookings.Cancel)
}

func (h *BookingHandler) applyStatus(c *gin.Context, action func(ctx context.Context, tenant, id uuid.UUID) (*booking.Booking, error)) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	b, err := action(c.Request.Context(), tenant, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTransition),
			errors.Is(err, booking.ErrNotPending),
			errors.Is(err, booking.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking cannot change to the requested status"})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// @Summary List booking types
// @Description Public listing returns active types only; staff may pass all=true
// @Tags bookings
// @Produce json
// @Param all query bool false "Include inactive types"
// @Success 200 {array} response.BookingTypeResponse
// @Router /booking-types [get]
func (h *BookingHandler) ListTypes(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	all, _ := strconv.ParseBool(c.Query("all"))

	types, err := h.bookings.ListTypes(c.Request.Context(), tenant, !all)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookingTypes(types))
}

// @Summary Create booking type
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.CreateBookingTypeRequest true "Booking type"
// @Success 201 {object} response.BookingTypeResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /staff/booking-types [post]
func (h *BookingHandler) CreateType(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	var req request.CreateBookingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bt, err := h.bookings.CreateType(c.Request.Context(), tenant, booking.BookingTypeParams{
		TenantID:           tenant,
		Name:               req.Name,
		Description:        req.Description,
		DurationMinutes:    req.DurationMinutes,
		BufferAfterMinutes: req.BufferAfterMinutes,
		MaxBookingsPerDay:  req.MaxBookingsPerDay,
		RequiresApproval:   req.RequiresApproval,
	})
	if err != nil {
		respondTypeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBookingType(bt))
}

// @Summary Update booking type
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking type ID"
// @Param request body request.UpdateBookingTypeRequest true "Changes"
// @Success 200 {object} response.BookingTypeResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/booking-types/{id} [patch]
func (h *BookingHandler) UpdateType(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateBookingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bt, err := h.bookings.UpdateType(c.Request.Context(), tenant, id, usecase.BookingTypePatch{
		Name:               req.Name,
		Description:        req.Description,
		DurationMinutes:    req.DurationMinutes,
		BufferAfterMinutes: req.BufferAfterMinutes,
		MaxBookingsPerDay:  req.MaxBookingsPerDay,
		RequiresApproval:   req.RequiresApproval,
		IsActive:           req.IsActive,
	})
	if err != nil {
		respondTypeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookingType(bt))
}

// @Summary Delete booking type
// @Tags bookings
// @Param id path string true "Booking type ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/booking-types/{id} [delete]
func (h *BookingHandler) DeleteType(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.bookings.DeleteType(c.Request.Context(), tenant, id); err != nil {
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondTypeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrEmptyName),
		errors.Is(err, booking.ErrInvalidDuration),
		errors.Is(err, booking.ErrInvalidBuffer),
		errors.Is(err, booking.ErrInvalidMaxPerDay):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		respondRepoErr(c, err)
	}
}

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/schedule"
	resdto "bakehouse/internal/handler/dto/response"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availability usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Pickup slot availability
// @Description List offerable pickup slots for an order type over a date range
// @Tags availability
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param order_type query string true "Order type"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} resdto.PickupAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability/pickup [get]
func (h *AvailabilityHandler) PickupSlots(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	orderType := order.Type(c.Query("order_type"))
	from, to, ok := dateRange(c, 30)
	if !ok {
		return
	}

	avail, err := h.availability.PickupSlots(c.Request.Context(), tenant, orderType, from, to)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownOrderType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order type"})
		case errors.Is(err, schedule.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		default:
			respondRepoErr(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPickupAvailability(avail))
}

// @Summary Consulting slot availability
// @Description List offerable appointment slots for a booking type over one month
// @Tags availability
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param booking_type_id query string true "Booking type ID"
// @Param year query int true "Calendar year"
// @Param month query int true "Calendar month (1-12)"
// @Success 200 {object} resdto.ConsultingAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/consulting [get]
func (h *AvailabilityHandler) ConsultingSlots(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	bookingTypeID, err := parseQueryUUID(c, "booking_type_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_type_id must be a UUID"})
		return
	}

	from, to, ok := monthQuery(c)
	if !ok {
		return
	}

	avail, err := h.availability.ConsultingSlots(c.Request.Context(), tenant, bookingTypeID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		default:
			respondRepoErr(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConsultingAvailability(avail))
}

// monthQuery reads ?year=YYYY&month=M and expands them to the month's range.
func monthQuery(c *gin.Context) (clock.Date, clock.Date, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a four-digit year"})
		return clock.Date{}, clock.Date{}, false
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
		return clock.Date{}, clock.Date{}, false
	}

	from, to := clock.MonthRange(year, time.Month(month))
	return from, to, true
}

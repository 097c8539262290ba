package api

import (
	"errors"
	"net/http"

	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/handler/dto/request"
	"bakehouse/internal/handler/dto/response"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CalendarHandler exposes the admin surface for availability rules:
// weekly windows, date overrides, blackouts, per-slot capacities and
// tenant settings.
type CalendarHandler struct {
	calendar usecase.CalendarUsecase
}

func NewCalendarHandler(calendar usecase.CalendarUsecase) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

func serviceKind(c *gin.Context) (schedule.ServiceKind, bool) {
	switch k := schedule.ServiceKind(c.Param("kind")); k {
	case schedule.KindBakery, schedule.KindConsulting:
		return k, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service kind"})
		return "", false
	}
}

// @Summary List weekly windows
// @Tags calendar
// @Produce json
// @Param kind path string true "Service kind (bakery or consulting)"
// @Success 200 {array} response.WindowResponse
// @Security BearerAuth
// @Router /staff/calendar/{kind}/windows [get]
func (h *CalendarHandler) ListWindows(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	kind, ok := serviceKind(c)
	if !ok {
		return
	}

	windows, err := h.calendar.ListWindows(c.Request.Context(), tenant, kind)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWindows(windows))
}

// @Summary Create weekly window
// @Tags calendar
// @Accept json
// @Produce json
// @Param kind path string true "Service kind"
// @Param request body request.WindowRequest true "Window"
// @Success 201 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /staff/calendar/{kind}/windows [post]
func (h *CalendarHandler) CreateWindow(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	kind, ok := serviceKind(c)
	if !ok {
		return
	}
	p, ok := bindWindow(c)
	if !ok {
		return
	}

	id, err := h.calendar.CreateWindow(c.Request.Context(), tenant, kind, p)
	if err != nil {
		respondWindowErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update weekly window
// @Tags calendar
// @Accept json
// @Param kind path string true "Service kind"
// @Param id path string true "Window ID"
// @Param request body request.WindowRequest true "Window"
// @Success 204
// @Security BearerAuth
// @Router /staff/calendar/{kind}/windows/{id} [put]
func (h *CalendarHandler) UpdateWindow(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	p, ok := bindWindow(c)
	if !ok {
		return
	}

	if err := h.calendar.UpdateWindow(c.Request.Context(), tenant, id, p); err != nil {
		respondWindowErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete weekly window
// @Tags calendar
// @Param kind path string true "Service kind"
// @Param id path string true "Window ID"
// @Success 204
// @Security BearerAuth
// @Router /staff/calendar/{kind}/windows/{id} [delete]
func (h *CalendarHandler) DeleteWindow(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.calendar.DeleteWindow(c.Request.Context(), tenant, id); err != nil {
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upsert date override
// @Description One override per tenant, kind and date; posting again replaces it
// @Tags calendar
// @Accept json
// @Produce json
// @Param kind path string true "Service kind"
// @Param request body request.OverrideRequest true "Override"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /staff/calendar/{kind}/overrides [put]
func (h *CalendarHandler) UpsertOverride(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	kind, ok := serviceKind(c)
	if !ok {
		return
	}
	var req request.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	p, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	id, err := h.calendar.UpsertOverride(c.Request.Context(), tenant, kind, p)
	if err != nil {
		respondWindowErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id.String()})
}

// @Summary Delete date override
// @Tags calendar
// @Param id path string true "Override ID"
// @Success 204
// @Security BearerAuth
// @Router /staff/calendar/overrides/{id} [delete]
func (h *CalendarHandler) DeleteOverride(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.calendar.DeleteOverride(c.Request.Context(), tenant, id); err != nil {
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List blackout dates
// @Tags calendar
// @Produce json
// @Success 200 {array} response.BlackoutResponse
// @Security BearerAuth
// @Router /staff/calendar/blackouts [get]
func (h *CalendarHandler) ListBlackouts(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	blackouts, err := h.calendar.ListBlackouts(c.Request.Context(), tenant)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBlackouts(blackouts))
}

// @Summary Create blackout date
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body request.BlackoutRequest true "Blackout"
// @Success 201 {object} map[string]string
// @Security BearerAuth
// @Router /staff/calendar/blackouts [post]
func (h *CalendarHandler) CreateBlackout(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	var req request.BlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	id, err := h.calendar.CreateBlackout(c.Request.Context(), tenant, date, req.Reason)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Delete blackout date
// @Tags calendar
// @Param id path string true "Blackout ID"
// @Success 204
// @Security BearerAuth
// @Router /staff/calendar/blackouts/{id} [delete]
func (h *CalendarHandler) DeleteBlackout(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.calendar.DeleteBlackout(c.Request.Context(), tenant, id); err != nil {
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upsert slot capacity
// @Description Pin the capacity of one pickup slot, overriding the tenant default
// @Tags calendar
// @Accept json
// @Param request body request.CapacityRequest true "Capacity"
// @Success 204
// @Security BearerAuth
// @Router /staff/calendar/capacities [put]
func (h *CalendarHandler) UpsertCapacity(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	var req request.CapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	ov, err := req.ToOverride()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	if err := h.calendar.UpsertCapacity(c.Request.Context(), tenant, ov); err != nil {
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete slot capacity
// @Tags calendar
// @Param date query string true "Slot date (2006-01-02)"
// @Param time query string true "Slot time (15:04)"
// @Success 204
// @Security BearerAuth
// @Router /staff/calendar/capacities [delete]
func (h *CalendarHandler) DeleteCapacity(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	date, err := clock.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	t, err := clock.ParseTimeOfDay(c.Query("time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format"})
		return
	}

	if err := h.calendar.DeleteCapacity(c.Request.Context(), tenant, date, t); err != nil {
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List tenant settings
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /staff/settings [get]
func (h *CalendarHandler) GetSettings(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	settings, err := h.calendar.GetSettings(c.Request.Context(), tenant)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Put tenant setting
// @Tags settings
// @Accept json
// @Param key path string true "Setting key"
// @Param request body request.SettingRequest true "Value"
// @Success 204
// @Security BearerAuth
// @Router /staff/settings/{key} [put]
func (h *CalendarHandler) PutSetting(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	key := c.Param("key")
	var req request.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.calendar.PutSetting(c.Request.Context(), tenant, key, req.Value); err != nil {
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete tenant setting
// @Tags settings
// @Param key path string true "Setting key"
// @Success 204
// @Security BearerAuth
// @Router /staff/settings/{key} [delete]
func (h *CalendarHandler) DeleteSetting(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	if err := h.calendar.DeleteSetting(c.Request.Context(), tenant, c.Param("key")); err != nil {
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindWindow(c *gin.Context) (p repository.WindowParams, ok bool) {
	var req request.WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return p, false
	}
	p, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format"})
		return p, false
	}
	return p, true
}

func respondWindowErr(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrInvalidWindow) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Window start must be before end"})
		return
	}
	respondRepoErr(c, err)
}

package api

import (
	"net/http"
	"time"

	"bakehouse/internal/handler/middleware"
	"bakehouse/internal/infra"
	"bakehouse/internal/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var timeNow = time.Now

func parseQueryUUID(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Query(name))
}

// tenantID pulls the tenant resolved by the middleware; its absence is a
// wiring bug, not a client error.
func tenantID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
	return id, ok
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// dateRange reads ?from=YYYY-MM-DD&to=YYYY-MM-DD with a default span.
func dateRange(c *gin.Context, defaultDays int) (clock.Date, clock.Date, bool) {
	var from, to clock.Date
	var err error

	if s := c.Query("from"); s != "" {
		from, err = clock.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return from, to, false
		}
	} else {
		from = clock.DateOf(timeNow())
	}

	if s := c.Query("to"); s != "" {
		to, err = clock.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return from, to, false
		}
	} else {
		to = from.AddDays(defaultDays)
	}

	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
		return from, to, false
	}
	return from, to, true
}

// respondRepoErr maps the repository error taxonomy to HTTP statuses; handlers
// call it after their specific errors.Is cases.
func respondRepoErr(c *gin.Context, err error) {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Related record missing"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxTenantIDKey = "tenant_id"

// TenantHeader is how every API request names its tenant. Nothing under /api
// runs without one; there is no cross-tenant request shape at all.
const TenantHeader = "X-Tenant-ID"

func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(TenantHeader)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "X-Tenant-ID header required",
			})
			c.Abort()
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "X-Tenant-ID must be a UUID",
			})
			c.Abort()
			return
		}

		c.Set(ctxTenantIDKey, tenantID)
		c.Next()
	}
}

func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxTenantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

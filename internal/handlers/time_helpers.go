package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtdesk/court-scheduler/internal/middleware"
	"github.com/courtdesk/court-scheduler/internal/models"
	"github.com/courtdesk/court-scheduler/internal/timezone"
)

// Each venue has its own timezone; every date in the API is interpreted in
// the venue's local time, never the server's.

func tenantFrom(c *gin.Context) *models.Tenant {
	return c.MustGet(middleware.ContextTenant).(*models.Tenant)
}

func tenantIDFrom(c *gin.Context) uint {
	return c.MustGet(middleware.ContextTenantID).(uint)
}

func locationFromTenant(tenant *models.Tenant) *time.Location {
	if tenant != nil {
		return timezone.Location(tenant.Timezone)
	}
	return timezone.Location("")
}

func userIDFrom(c *gin.Context) *uint {
	if v, exists := c.Get(middleware.ContextUserID); exists {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

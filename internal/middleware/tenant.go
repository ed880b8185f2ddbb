package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtdesk/court-scheduler/internal/models"
)

// TenantMiddleware resolves the :tenantSlug path segment to an active venue
// and stores it in the request context. Everything downstream trusts these
// values and never re-checks tenancy.
func TenantMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("tenantSlug")
		if slug == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "tenant_not_found"})
			return
		}

		var tenant models.Tenant
		if err := db.
			Where("slug = ? AND active = ?", slug, true).
			First(&tenant).Error; err != nil {

			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "tenant_not_found"})
			return
		}

		c.Set(ContextTenantID, tenant.ID)
		c.Set(ContextTenant, &tenant)

		c.Next()
	}
}

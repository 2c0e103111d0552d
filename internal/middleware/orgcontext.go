package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fluxo/internal/models"
	"fluxo/internal/uuid"
)

const orgIDKey = "orgID"

// OrgContext returns a Gin middleware that admits an optional organization
// context from the X-Organization-ID header. When present, the caller must
// hold a role in that organization; the validated ID is then set on the
// context for handlers to scope queries with. Absent header means personal
// scope (no organization), never "any organization".
func OrgContext(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := c.GetHeader("X-Organization-ID")
		if orgID == "" {
			c.Next()
			return
		}

		if !uuid.IsValid(orgID) {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"error": gin.H{"code": "INVALID_INPUT", "message": "Invalid organization ID"}})
			return
		}

		userID := c.GetString("userID")
		var count int64
		if err := db.Model(&models.UserRole{}).
			Where("user_id = ? AND organization_id = ?", userID, orgID).
			Count(&count).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"}})
			return
		}
		if count == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": gin.H{"code": "FORBIDDEN", "message": "Access denied"}})
			return
		}

		c.Set(orgIDKey, orgID)
		c.Next()
	}
}

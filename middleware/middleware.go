package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

// RoleAllowed lets the request through only when the authenticated role is
// one of roles. It must run after the auth middleware.
func RoleAllowed(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(utils.ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Insufficient permissions",
		})
	}
}

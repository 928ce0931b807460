package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/permissions"
)

// RequireAdmin ensures the requester has admin authority (admin role or
// superuser). Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "authentication required",
			})
			c.Abort()
			return
		}

		if !permissions.CanManageUsers(user) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

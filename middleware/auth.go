package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleContextKey is the gin context key holding the caller's role.
const RoleContextKey = "role"

// Identity reads identity headers injected by the front proxy. This service
// does not authenticate users itself; orders are looked up by email and
// admin access is gated on the injected role.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetHeader("X-User-Role")
		if role == "" {
			if v, err := c.Cookie("user_role"); err == nil && v != "" {
				role = v
			}
		}
		c.Set(RoleContextKey, role)
		c.Next()
	}
}

// AdminOnly restricts access to callers with the admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(RoleContextKey)
		if !exists || role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionContextKey is the gin context key holding the cart session ID.
const SessionContextKey = "session_id"

const sessionCookie = "cart_session"

// Session resolves the caller's cart session from the X-Session-ID header
// or the cart_session cookie, issuing a fresh ID (and cookie) when absent.
// Each cart is owned by exactly one session.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			if v, err := c.Cookie(sessionCookie); err == nil && v != "" {
				sessionID = v
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, 60*60*24*7, "/", "", false, true)
		}
		c.Set(SessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the cart session ID from the gin context.
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller identity resolved by the upstream gateway.
// Authentication itself happens outside this service.
const UserIDHeader = "X-User-ID"

// UserIDKey is the gin context key the resolved user id is stored under.
const UserIDKey = "user_id"

// Identity copies the gateway-resolved user id into the context when present.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
			c.Set(UserIDKey, id)
		}
		c.Next()
	}
}

// RequireUser aborts with 401 when the gateway did not resolve a user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"message": "authentication required"},
			})
			return
		}
		c.Set(UserIDKey, id)
		c.Next()
	}
}

// UserID returns the identity stored by Identity or RequireUser.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

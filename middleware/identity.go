package middleware

import "github.com/gin-gonic/gin"

// The storefront runs against a single implicit user when no identity is
// supplied; multi-tenant auth is deliberately out of scope.
const defaultUserID = "1"

// Identity resolves the acting user for downstream handlers. The X-User-ID
// header wins when present; otherwise the default user applies. Handlers
// read the result via c.GetString("user_id").
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = defaultUserID
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

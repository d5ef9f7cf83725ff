package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a generic 500 response. The diagnostic
// detail field is only exposed in development deployments.
func Recovery(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("unhandled panic", "path", c.Request.URL.Path, "panic", r)
				body := gin.H{"error": "Internal server error"}
				if development {
					body["details"] = fmt.Sprint(r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}

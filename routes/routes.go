package routes

import (
	"net/http"
	"time"

	"github.com/Prikus-01/Amazon-clone/cache"
	"github.com/Prikus-01/Amazon-clone/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every resource group
// plus the health check and the catch-all 404.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache) {
	r.Use(middleware.Identity())

	SetupProductRoutes(r, db, store)
	SetupCartRoutes(r, db)
	SetupWishlistRoutes(r, db)
	SetupOrderRoutes(r, db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

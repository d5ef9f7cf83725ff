package productcontroller

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Prikus-01/Amazon-clone/cache"
	"github.com/Prikus-01/Amazon-clone/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID returns a single product with its reviews.
// URL param: /products/:id
func GetProductByID(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		key := fmt.Sprintf("product:%d", id)
		var cached models.Product
		if hit, err := store.GetJSON(c.Request.Context(), key, &cached); err == nil && hit {
			c.JSON(http.StatusOK, cached)
			return
		}

		var product models.Product
		if err := db.Preload("Reviews").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				slog.Error("failed to fetch product", "id", id, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		if err := store.SetJSON(c.Request.Context(), key, product); err != nil {
			slog.Warn("failed to cache product", "id", id, "error", err)
		}
		c.JSON(http.StatusOK, product)
	}
}

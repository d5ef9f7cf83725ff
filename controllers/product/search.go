package productcontroller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Prikus-01/Amazon-clone/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SearchProducts matches the query case-insensitively against title,
// description, brand, and category slug.
// GET /products/search?q=...&limit=...
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
			return
		}

		limit := defaultPageLimit
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}

		likePattern := "%" + q + "%"
		products := []models.Product{}
		if err := db.Preload("Reviews").
			Where("title ILIKE ? OR description ILIKE ? OR brand ILIKE ? OR category_slug ILIKE ?",
				likePattern, likePattern, likePattern, likePattern).
			Order("id").
			Limit(limit).
			Find(&products).Error; err != nil {
			slog.Error("failed to search products", "q", q, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}

		c.JSON(http.StatusOK, ProductPage{
			Products: products,
			Total:    int64(len(products)),
			Skip:     0,
			Limit:    limit,
		})
	}
}

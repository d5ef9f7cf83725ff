package productcontroller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Prikus-01/Amazon-clone/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPageLimit = 30

// ProductPage is the paginated listing envelope shared by the list, search,
// and by-category endpoints.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

func pageParams(c *gin.Context) (limit, skip int, ok bool) {
	limit = defaultPageLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return 0, 0, false
		}
		limit = n
	}
	if v := c.Query("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip"})
			return 0, 0, false
		}
		skip = n
	}
	return limit, skip, true
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, skip, ok := pageParams(c)
		if !ok {
			return
		}

		products := []models.Product{}
		if err := db.Preload("Reviews").
			Order("id").
			Limit(limit).
			Offset(skip).
			Find(&products).Error; err != nil {
			slog.Error("failed to fetch products", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var total int64
		if err := db.Model(&models.Product{}).Count(&total).Error; err != nil {
			slog.Error("failed to count products", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, ProductPage{Products: products, Total: total, Skip: skip, Limit: limit})
	}
}

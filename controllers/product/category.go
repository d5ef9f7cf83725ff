package productcontroller

import (
	"log/slog"
	"net/http"

	"github.com/Prikus-01/Amazon-clone/cache"
	"github.com/Prikus-01/Amazon-clone/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductsByCategory returns a paginated page of products in one
// category.
// GET /products/category/:slug
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		limit, skip, ok := pageParams(c)
		if !ok {
			return
		}

		products := []models.Product{}
		if err := db.Preload("Reviews").
			Where("category_slug = ?", slug).
			Order("id").
			Limit(limit).
			Offset(skip).
			Find(&products).Error; err != nil {
			slog.Error("failed to fetch category products", "slug", slug, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var total int64
		if err := db.Model(&models.Product{}).
			Where("category_slug = ?", slug).
			Count(&total).Error; err != nil {
			slog.Error("failed to count category products", "slug", slug, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, ProductPage{Products: products, Total: total, Skip: skip, Limit: limit})
	}
}

// GetCategories returns all categories.
// GET /products/categories
func GetCategories(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		const key = "categories"
		var cached []models.Category
		if hit, err := store.GetJSON(c.Request.Context(), key, &cached); err == nil && hit {
			c.JSON(http.StatusOK, cached)
			return
		}

		categories := []models.Category{}
		if err := db.Order("slug").Find(&categories).Error; err != nil {
			slog.Error("failed to fetch categories", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		if err := store.SetJSON(c.Request.Context(), key, categories); err != nil {
			slog.Warn("failed to cache categories", "error", err)
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryList returns category slugs only.
// GET /products/category-list
func GetCategoryList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slugs := []string{}
		if err := db.Model(&models.Category{}).
			Order("slug").
			Pluck("slug", &slugs).Error; err != nil {
			slog.Error("failed to fetch category list", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, slugs)
	}
}

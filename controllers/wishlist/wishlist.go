package wishlistControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Prikus-01/Amazon-clone/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProductNotFound = errors.New("product not found")

type AddItemInput struct {
	ProductID uint `json:"productId"`
}

// -------- Core Logic --------

// GetWishlist returns the user's saved products joined with live catalog
// data, most-recently-added first.
func GetWishlist(db *gorm.DB, userID string) ([]models.WishlistLineView, error) {
	views := []models.WishlistLineView{}
	err := db.Table("wishlist_items").
		Select("products.id, products.title, products.price, products.discount_percentage, products.thumbnail, products.rating, products.stock, products.category_slug AS category").
		Joins("JOIN products ON products.id = wishlist_items.product_id").
		Where("wishlist_items.user_id = ?", userID).
		Order("wishlist_items.created_at DESC").
		Scan(&views).Error
	return views, err
}

// AddItem validates the product then inserts-or-ignores. A duplicate add is
// a successful no-op, not an error.
func AddItem(db *gorm.DB, userID string, productID uint) ([]models.WishlistLineView, error) {
	var product models.Product
	if err := db.Select("id").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	item := models.WishlistItem{UserID: userID, ProductID: productID}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	return GetWishlist(db, userID)
}

// RemoveItem deletes-or-ignores.
func RemoveItem(db *gorm.DB, userID string, productID uint) ([]models.WishlistLineView, error) {
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
	if err != nil {
		return nil, err
	}

	return GetWishlist(db, userID)
}

// IsInWishlist reports set membership for a (user, product) pair.
func IsInWishlist(db *gorm.DB, userID string, productID uint) (bool, error) {
	var count int64
	err := db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

// -------- Handlers --------

// GET /wishlist
func GetWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		wishlist, err := GetWishlist(db, c.GetString("user_id"))
		if err != nil {
			slog.Error("failed to fetch wishlist", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}

// POST /wishlist
func AddToWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if input.ProductID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		wishlist, err := AddItem(db, c.GetString("user_id"), input.ProductID)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			slog.Error("failed to add item to wishlist", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to wishlist"})
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}

// DELETE /wishlist/:productId
func RemoveFromWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		wishlist, err := RemoveItem(db, c.GetString("user_id"), uint(productID))
		if err != nil {
			slog.Error("failed to remove wishlist item", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from wishlist"})
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}

// GET /wishlist/check/:productId
func CheckWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		isInWishlist, err := IsInWishlist(db, c.GetString("user_id"), uint(productID))
		if err != nil {
			slog.Error("failed to check wishlist", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"isInWishlist": isInWishlist})
	}
}

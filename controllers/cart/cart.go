package cartControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Prikus-01/Amazon-clone/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrProductNotFound is returned when a cart mutation references a product
// that has no catalog record.
var ErrProductNotFound = errors.New("product not found")

type AddItemInput struct {
	ProductID uint `json:"productId"`
	Quantity  *int `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity"`
}

// -------- Core Logic --------

// GetCart returns the user's cart joined with live product data,
// most-recently-added first.
func GetCart(db *gorm.DB, userID string) ([]models.CartLineView, error) {
	views := []models.CartLineView{}
	err := db.Table("cart_items").
		Select("products.id, products.title, products.price, products.discount_percentage, products.thumbnail, products.stock, cart_items.quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at DESC").
		Scan(&views).Error
	return views, err
}

// AddItem validates the product, then upserts the (user, product) row.
// Repeated adds accumulate quantity; the conflict clause keeps two
// concurrent adds from losing an increment.
func AddItem(db *gorm.DB, userID string, productID uint, quantity int) ([]models.CartLineView, error) {
	var product models.Product
	if err := db.Select("id").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	return GetCart(db, userID)
}

// UpdateQuantity overwrites the stored quantity. A quantity of zero or less
// removes the entry; a zero-quantity row is never stored.
func UpdateQuantity(db *gorm.DB, userID string, productID uint, quantity int) ([]models.CartLineView, error) {
	if quantity <= 0 {
		return RemoveItem(db, userID, productID)
	}

	err := db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
	if err != nil {
		return nil, err
	}

	return GetCart(db, userID)
}

// RemoveItem deletes the entry if present. Removing an absent entry is a
// successful no-op.
func RemoveItem(db *gorm.DB, userID string, productID uint) ([]models.CartLineView, error) {
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return nil, err
	}

	return GetCart(db, userID)
}

// ClearCart deletes all entries for the user unconditionally.
func ClearCart(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// -------- Handlers --------

// GET /cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := GetCart(db, c.GetString("user_id"))
		if err != nil {
			slog.Error("failed to fetch cart", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
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

		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive integer"})
			return
		}

		cart, err := AddItem(db, c.GetString("user_id"), input.ProductID, quantity)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			slog.Error("failed to add item to cart", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /cart/:productId
func UpdateQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if input.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity is required"})
			return
		}

		cart, err := UpdateQuantity(db, c.GetString("user_id"), uint(productID), *input.Quantity)
		if err != nil {
			slog.Error("failed to update cart item", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/:productId
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		cart, err := RemoveItem(db, c.GetString("user_id"), uint(productID))
		if err != nil {
			slog.Error("failed to remove cart item", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ClearCart(db, c.GetString("user_id")); err != nil {
			slog.Error("failed to clear cart", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}

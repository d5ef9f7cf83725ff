package orderControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	cartControllers "github.com/Prikus-01/Amazon-clone/controllers/cart"
	"github.com/Prikus-01/Amazon-clone/models"
)

var (
	ErrNoItems           = errors.New("order items are required")
	ErrNoAddress         = errors.New("shipping address is required")
	ErrIncompleteAddress = errors.New("incomplete shipping address")
	ErrOrderNotFound     = errors.New("order not found")
)

// -------- Request Structs --------

// OrderItemInput carries the line item exactly as the client priced it.
// Price and discount are stored verbatim, never re-read from the catalog.
type OrderItemInput struct {
	ID                 uint            `json:"id"`
	Title              string          `json:"title"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Quantity           int             `json:"quantity"`
	Thumbnail          string          `json:"thumbnail"`
}

type PlaceOrderRequest struct {
	Items           []OrderItemInput        `json:"items"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	Shipping        decimal.Decimal         `json:"shipping"`
	Tax             decimal.Decimal         `json:"tax"`
	Total           decimal.Decimal         `json:"total"`
}

// -------- Helpers --------

// generateOrderID produces a user-facing order reference. The timestamp
// keeps references roughly sortable; the UUID makes them collision-resistant
// and non-enumerable.
func generateOrderID() string {
	return "ORD-" + time.Now().UTC().Format("20060102150405") + "-" + uuid.NewString()
}

func validateRequest(req PlaceOrderRequest) error {
	if len(req.Items) == 0 {
		return ErrNoItems
	}
	a := req.ShippingAddress
	if a == nil {
		return ErrNoAddress
	}
	if a.FullName == "" || a.AddressLine1 == "" || a.City == "" ||
		a.State == "" || a.ZipCode == "" || a.Country == "" {
		return ErrIncompleteAddress
	}
	return nil
}

// -------- Core Logic --------

// PlaceOrder validates the request, then atomically materializes one Order
// row plus its OrderItem rows. Totals are taken as supplied by the caller;
// any failure rolls the whole write back so no partial order is ever
// visible. Clearing the cart is the caller's post-commit concern.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	order := models.Order{
		ID:              generateOrderID(),
		UserID:          userID,
		Status:          models.OrderStatusConfirmed,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Tax:             req.Tax,
		Total:           req.Total,
		ShippingAddress: *req.ShippingAddress,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:          item.ID,
			Title:              item.Title,
			Quantity:           item.Quantity,
			Price:              item.Price,
			DiscountPercentage: item.DiscountPercentage,
			Thumbnail:          item.Thumbnail,
		})
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return nil, err
	}

	// Re-read for the canonical response shape.
	return GetOrderByID(db, userID, order.ID)
}

// GetOrders returns the user's orders with their items, most-recent-first.
// Items come from the order rows themselves, never a live catalog join.
func GetOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// GetOrderByID returns one of the user's orders, or ErrOrderNotFound when
// the id is unknown or belongs to another user.
func GetOrderByID(db *gorm.DB, userID, orderID string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		userID := c.GetString("user_id")
		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrNoItems):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Order items are required"})
			case errors.Is(err, ErrNoAddress):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping address is required"})
			case errors.Is(err, ErrIncompleteAddress):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Incomplete shipping address"})
			default:
				slog.Error("failed to place order", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// Post-commit side effect: a crash here leaves stale cart rows
		// behind, which the system tolerates. Re-checkout simply creates a
		// second order.
		if err := cartControllers.ClearCart(db, userID); err != nil {
			slog.Error("failed to clear cart after order", "order_id", order.ID, "error", err)
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := GetOrders(db, c.GetString("user_id"))
		if err != nil {
			slog.Error("failed to fetch orders", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := GetOrderByID(db, c.GetString("user_id"), c.Param("id"))
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			slog.Error("failed to fetch order", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

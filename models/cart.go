package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) row. The composite unique index is what
// lets add-to-cart run as a single ON CONFLICT upsert instead of a
// read-then-write round trip.
type CartItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID uint   `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLineView is a cart row joined with live product data at read time.
// Orders freeze these values at placement; the cart never does.
type CartLineView struct {
	ID                 uint            `json:"id"`
	Title              string          `json:"title"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Thumbnail          string          `json:"thumbnail"`
	Stock              int             `json:"stock"`
	Quantity           int             `json:"quantity"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WishlistItem is a set membership record: no quantity, unique per
// (user, product).
type WishlistItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	ProductID uint   `gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	CreatedAt time.Time
}

type WishlistLineView struct {
	ID                 uint            `json:"id"`
	Title              string          `json:"title"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Thumbnail          string          `json:"thumbnail"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Category           string          `json:"category"`
}

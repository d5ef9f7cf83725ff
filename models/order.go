package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// Order placement has no payment authorization step, so the only status
// this system ever writes is Confirmed.
const OrderStatusConfirmed OrderStatus = "Confirmed"

// ShippingAddress is captured by value on the order row so later
// address-book edits never affect historical orders.
type ShippingAddress struct {
	FullName     string `gorm:"column:shipping_full_name" json:"fullName"`
	AddressLine1 string `gorm:"column:shipping_address_line1" json:"addressLine1"`
	AddressLine2 string `gorm:"column:shipping_address_line2" json:"addressLine2"`
	City         string `gorm:"column:shipping_city" json:"city"`
	State        string `gorm:"column:shipping_state" json:"state"`
	ZipCode      string `gorm:"column:shipping_zip_code" json:"zipCode"`
	Country      string `gorm:"column:shipping_country" json:"country"`
	Phone        string `gorm:"column:shipping_phone" json:"phone"`
}

// Order is immutable once created; no update surface exists.
type Order struct {
	ID              string          `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID          string          `gorm:"index;not null" json:"-"`
	Status          OrderStatus     `gorm:"type:varchar(20);default:'Confirmed'" json:"status"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	Shipping        decimal.Decimal `gorm:"type:decimal(12,2)" json:"shipping"`
	Tax             decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	ShippingAddress ShippingAddress `gorm:"embedded" json:"shippingAddress"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time       `gorm:"column:order_date" json:"date"`
}

// OrderItem captures price and discount as supplied at order time, never a
// live join to current product data. This is what keeps historical orders
// from changing value when catalog prices move.
type OrderItem struct {
	ID                 uint            `gorm:"primaryKey" json:"-"`
	OrderID            string          `gorm:"index;type:varchar(64);not null" json:"-"`
	ProductID          uint            `gorm:"not null" json:"id"`
	Title              string          `json:"title"`
	Quantity           int             `gorm:"not null" json:"quantity"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discountPercentage"`
	Thumbnail          string          `json:"thumbnail"`
}

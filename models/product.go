package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields are plain JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string          `gorm:"not null" json:"title"`
	Description        string          `json:"description"`
	CategorySlug       string          `gorm:"index" json:"category"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Brand              string          `json:"brand"`
	SKU                string          `json:"sku"`
	Weight             float64         `json:"weight"`
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `gorm:"serializer:json" json:"images"`
	Tags               []string        `gorm:"serializer:json" json:"tags"`
	Reviews            []Review        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews"`
	CreatedAt          time.Time       `json:"-"`
	UpdatedAt          time.Time       `json:"-"`
}

type Review struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	ProductID     uint      `gorm:"index" json:"-"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	ReviewDate    time.Time `gorm:"column:review_date" json:"date"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
}

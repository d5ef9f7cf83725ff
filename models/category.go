package models

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	Name string `gorm:"not null" json:"name"`
	URL  string `json:"url"`
}

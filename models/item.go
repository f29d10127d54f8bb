package models

import (
	"errors"
	"time"
)

type Category string

const (
	CategoryShirt     Category = "S"
	CategorySportwear Category = "SW"
	CategoryOutwear   Category = "OW"
)

// Categories is the fixed enumeration the dashboard is keyed on.
var Categories = []Category{CategoryShirt, CategorySportwear, CategoryOutwear}

var categoryLabels = map[Category]string{
	CategoryShirt:     "Shirt",
	CategorySportwear: "Sport wear",
	CategoryOutwear:   "Outwear",
}

func (c Category) Label() string {
	return categoryLabels[c]
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryLabels[c]; !ok {
		return "", errors.New("invalid category")
	}
	return c, nil
}

type Item struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string   `gorm:"not null" json:"title"`
	Slug          string   `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string   `json:"description"`
	Price         float64  `gorm:"not null" json:"price"`
	DiscountPrice float64  `json:"discount_price"`
	Category      Category `gorm:"type:VARCHAR(2);not null" json:"category"`
	Image         string   `json:"image"`
	Stock         int      `gorm:"not null;default:0" json:"stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

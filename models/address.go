package models

import "time"

type Address struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           string `gorm:"index;not null" json:"user_id"`
	StreetAddress    string `gorm:"not null" json:"street_address"`
	ApartmentAddress string `json:"apartment_address"`
	Country          string `gorm:"not null" json:"country"`
	Zip              string `gorm:"not null" json:"zip"`
	// At most one default address per user; enforced by the checkout
	// transaction (unset-then-set), not by a schema constraint.
	IsDefault bool      `gorm:"index" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// Order doubles as the cart: the row with Ordered=false is the user's
// active cart, and a user has at most one of those at a time.
type Order struct {
	ID                uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            string      `gorm:"index;not null" json:"user_id"`
	Ref               string      `gorm:"uniqueIndex;not null" json:"ref"`
	Items             []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Ordered           bool        `gorm:"index;default:false" json:"ordered"`
	ShippingAddressID *uint       `json:"shipping_address_id"`
	ShippingAddress   *Address    `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`
	Email             string      `json:"email"`
	CPF               string      `gorm:"column:cpf;type:VARCHAR(11)" json:"cpf"`
	PaymentRef        string      `json:"payment_ref"`
	StartDate         time.Time   `json:"start_date"`
	OrderedDate       *time.Time  `json:"ordered_date"`
}

// Total sums the captured sell prices; Items must be loaded.
func (o Order) Total() float64 {
	var total float64
	for _, line := range o.Items {
		total += line.SellPrice * float64(line.Quantity)
	}
	return total
}

type OrderItem struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint   `gorm:"index" json:"order_id"`
	UserID  string `gorm:"index;not null" json:"user_id"`
	ItemID  uint   `gorm:"not null" json:"item_id"`
	Item    Item   `gorm:"foreignKey:ItemID" json:"item"`
	Ordered bool   `gorm:"index;default:false" json:"ordered"`
	// Quantity never persists at zero; removing the last unit deletes the row.
	Quantity int `gorm:"not null;default:1" json:"quantity"`
	// SellPrice is the item price captured when the line was created,
	// decoupled from later price changes.
	SellPrice float64   `gorm:"not null" json:"sell_price"`
	AddedAt   time.Time `json:"added_at"`
}

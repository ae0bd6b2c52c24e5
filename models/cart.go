package models

import "time"

// Cart is keyed by the opaque session-issued cart id. One cart per session;
// items are removed with the cart.
type Cart struct {
	CartID    string     `gorm:"primaryKey" json:"cartId"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem holds a product reference and a quantity. At most one item per
// distinct product within a cart. Product is resolved on read and stays nil
// when the referenced product no longer exists.
type CartItem struct {
	ID        uint     `gorm:"primaryKey" json:"-"`
	CartID    string   `gorm:"index" json:"-"`
	ProductID uint     `json:"-"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int      `json:"quantity"`
}

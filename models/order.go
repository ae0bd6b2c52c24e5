package models

import "time"

// DirectPurchaseCartID marks orders placed through the single-product
// checkout, which bypasses the cart entirely.
const DirectPurchaseCartID = "direct"

// Order is an immutable snapshot of a completed checkout. Orders are never
// updated or deleted by the storefront; they form an append-only ledger.
type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	CartID    string      `gorm:"not null" json:"cartId"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total     int64       `gorm:"not null" json:"total"`
	Message   string      `gorm:"type:text" json:"message"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItem captures name and price at purchase time, independent of later
// product edits.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	OrderID   uint   `gorm:"index" json:"-"`
	ProductID uint   `json:"product"`
	Name      string `gorm:"not null" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

package models

import (
	"encoding/json"
	"time"
)

// Product prices are integers in the smallest currency unit so subtotal
// arithmetic stays exact.
type Product struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	BrandID    uint           `gorm:"index;not null" json:"brand"`
	MRP        int64          `gorm:"not null" json:"MRP"`
	Price      int64          `gorm:"not null" json:"price"`
	InStock    bool           `json:"inStock"`
	Color      string         `json:"color"`
	About      string         `json:"about"`
	Images     []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	OrderCount int64          `gorm:"default:0" json:"orderCount"` // bumped by cart checkout
	DateAdded  time.Time      `gorm:"autoCreateTime" json:"dateAdded"`
}

// ProductImage is one entry of a product's ordered image list.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"index"`
	Filename  string `gorm:"not null"`
	Position  int
}

// On the wire an image is just its stored filename.
func (pi ProductImage) MarshalJSON() ([]byte, error) {
	return json.Marshal(pi.Filename)
}

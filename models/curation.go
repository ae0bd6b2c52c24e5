package models

// Admin-curated storefront lists. Each product or brand appears at most once
// per list; entries resolve their target on read so the storefront can render
// them without extra lookups.

type FeaturedProduct struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ProductID uint     `gorm:"uniqueIndex;not null" json:"-"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"productId"`
}

type BestSellingProduct struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ProductID uint     `gorm:"uniqueIndex;not null" json:"-"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"productId"`
}

type TopBrand struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	BrandID uint   `gorm:"uniqueIndex;not null" json:"-"`
	Brand   *Brand `gorm:"foreignKey:BrandID" json:"brand"`
}

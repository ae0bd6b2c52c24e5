package adminController

import (
	"errors"
	"net/http"

	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Curated storefront lists: featured products, best sellers, top brands.
// Each list rejects duplicates on add and 404s on removing an absent entry.

type ProductListInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

type BrandListInput struct {
	BrandID uint `json:"brandId" binding:"required"`
}

// POST /admin/featured
func AddFeatured(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductListInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}
		var existing models.FeaturedProduct
		if err := db.First(&existing, "product_id = ?", input.ProductID).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is already in the featured list"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		featured := models.FeaturedProduct{ProductID: input.ProductID}
		if err := db.Create(&featured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add featured product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added to featured list", "featured": featured})
	}
}

// DELETE /admin/featured/:productId
func RemoveFeatured(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("product_id = ?", c.Param("productId")).Delete(&models.FeaturedProduct{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove featured product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in featured list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from featured list"})
	}
}

// GET /featured
func GetFeatured(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var featured []models.FeaturedProduct
		if err := db.Preload("Product.Images").Find(&featured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}
		c.JSON(http.StatusOK, featured)
	}
}

// POST /admin/best-selling
func AddBestSelling(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductListInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}
		var existing models.BestSellingProduct
		if err := db.First(&existing, "product_id = ?", input.ProductID).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is already in the best-selling list"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		bestSelling := models.BestSellingProduct{ProductID: input.ProductID}
		if err := db.Create(&bestSelling).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add best-selling product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added to best-selling list", "bestSelling": bestSelling})
	}
}

// DELETE /admin/best-selling/:productId
func RemoveBestSelling(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("product_id = ?", c.Param("productId")).Delete(&models.BestSellingProduct{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove best-selling product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in best-selling list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from best-selling list"})
	}
}

// GET /best-selling
func GetBestSelling(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bestSelling []models.BestSellingProduct
		if err := db.Preload("Product.Images").Find(&bestSelling).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch best-selling products"})
			return
		}
		c.JSON(http.StatusOK, bestSelling)
	}
}

// POST /admin/top-brands
func AddTopBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BrandListInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Brand ID is required"})
			return
		}
		var existing models.TopBrand
		if err := db.First(&existing, "brand_id = ?", input.BrandID).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Brand is already in the top brands list"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		topBrand := models.TopBrand{BrandID: input.BrandID}
		if err := db.Create(&topBrand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add top brand"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Brand added to top brands list", "topBrand": topBrand})
	}
}

// DELETE /admin/top-brands/:brandId
func RemoveTopBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("brand_id = ?", c.Param("brandId")).Delete(&models.TopBrand{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove top brand"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found in top brands list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Brand removed from top brands list"})
	}
}

// GET /top-brands
func GetTopBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var topBrands []models.TopBrand
		if err := db.Preload("Brand").Find(&topBrands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top brands"})
			return
		}
		c.JSON(http.StatusOK, topBrands)
	}
}

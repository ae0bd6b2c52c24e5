package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		err := db.Preload("Images", orderImages).First(&product, "id = ?", c.Param("id")).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /products/brand/:brandId
func GetProductsByBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		err := db.Preload("Images", orderImages).
			Where("brand_id = ?", c.Param("brandId")).Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// Pointer fields so an absent key leaves the stored value alone.
type UpdateProductInput struct {
	Name    *string `json:"name"`
	MRP     *int64  `json:"MRP"`
	Price   *int64  `json:"price"`
	InStock *bool   `json:"inStock"`
	Color   *string `json:"color"`
	About   *string `json:"about"`
}

// PUT /products/:id
func UpdateProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.MRP != nil {
			product.MRP = *input.MRP
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.InStock != nil {
			product.InStock = *input.InStock
		}
		if input.Color != nil {
			product.Color = *input.Color
		}
		if input.About != nil {
			product.About = *input.About
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		store.Delete(newArrivalsCacheKey)
		c.JSON(http.StatusOK, product)
	}
}

package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// DELETE /products/:id
//
// Removes the product together with its image rows and any featured or
// best-selling entries referencing it. The stored image files stay on disk
// until the next cleanup sweep.
func DeleteProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.FeaturedProduct{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.BestSellingProduct{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		store.Delete(newArrivalsCacheKey)
		c.JSON(http.StatusOK, gin.H{"message": "Product and related records deleted successfully"})
	}
}

package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const newArrivalsCacheKey = "newArrivals"

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Images", orderImages).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/new-arrivals
func GetNewArrivals(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 40
		if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
			limit = l
		}

		// The default listing is the cached one; explicit limits bypass it.
		if limit == 40 {
			if cached, ok := store.Get(newArrivalsCacheKey); ok {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		var products []models.Product
		err := db.Preload("Images", orderImages).
			Order("date_added DESC").Limit(limit).Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch new arrivals"})
			return
		}
		if limit == 40 {
			store.Set(newArrivalsCacheKey, products, cache.DefaultExpiration)
		}
		c.JSON(http.StatusOK, products)
	}
}

package routes

import (
	adminController "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/admin"
	brandControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/brand"
	cartControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/cart"
	productcontroller "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/product"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers everything the storefront reads without auth.
func SetupPublicRoutes(api *gin.RouterGroup, db *gorm.DB, store *cache.Cache) {
	api.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Backend is running successfully!"})
	})

	// ──────────────── Brands ────────────────
	api.GET("/brands", brandControllers.GetBrands(db, store))
	api.GET("/brands/:id", brandControllers.GetBrandByID(db))

	// ──────────────── Products ────────────────
	api.GET("/products", productcontroller.GetProducts(db))
	api.GET("/products/new-arrivals", productcontroller.GetNewArrivals(db, store))
	api.GET("/products/:id", productcontroller.GetProductByID(db))
	api.GET("/products/brand/:brandId", productcontroller.GetProductsByBrand(db))

	// ──────────────── Curated lists ────────────────
	api.GET("/featured", adminController.GetFeatured(db))
	api.GET("/best-selling", adminController.GetBestSelling(db))
	api.GET("/top-brands", adminController.GetTopBrands(db))

	// ──────────────── Direct purchase ────────────────
	api.GET("/product/:productId/checkout", cartControllers.CheckoutDirectHandler(db))
}

package routes

import (
	adminController "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/admin"
	brandControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/brand"
	orderControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/order"
	productcontroller "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/product"
	uploadControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/upload"
	"github.com/Rifaque/Bhatkal-Time-Luxe/middleware"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers every token-gated endpoint: catalog mutations,
// uploads, curation management, the order ledger, and the image sweep.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, store *cache.Cache) {
	auth := middleware.ValidateAdminToken

	api.GET("/dashboard", auth, adminController.Dashboard())

	// ─────────── Catalog mutations ───────────
	api.POST("/brands", auth, brandControllers.CreateBrand(db, store))
	api.PUT("/brands/:id", auth, brandControllers.UpdateBrand(db, store))
	api.DELETE("/brands/:id", auth, brandControllers.DeleteBrand(db, store))

	api.POST("/products", auth, productcontroller.CreateProduct(db, store))
	api.PUT("/products/:id", auth, productcontroller.UpdateProduct(db, store))
	api.DELETE("/products/:id", auth, productcontroller.DeleteProduct(db, store))

	// ─────────── Uploads ───────────
	api.POST("/upload/brand-logo", auth, uploadControllers.UploadBrandLogo())
	api.POST("/upload/product-image", auth, uploadControllers.UploadProductImages())

	// ─────────── Back office ───────────
	adminGroup := api.Group("/admin")
	adminGroup.Use(auth)
	{
		adminGroup.POST("/featured", adminController.AddFeatured(db))
		adminGroup.DELETE("/featured/:productId", adminController.RemoveFeatured(db))
		adminGroup.POST("/best-selling", adminController.AddBestSelling(db))
		adminGroup.DELETE("/best-selling/:productId", adminController.RemoveBestSelling(db))
		adminGroup.POST("/top-brands", adminController.AddTopBrand(db))
		adminGroup.DELETE("/top-brands/:brandId", adminController.RemoveTopBrand(db))

		adminGroup.POST("/cleanup-images", adminController.CleanupImagesHandler(db))

		adminGroup.GET("/orders", orderControllers.GetAllOrders(db))
		adminGroup.GET("/orders/export-excel", orderControllers.ExportOrdersToExcel(db))
	}
}

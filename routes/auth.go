package routes

import (
	adminController "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/admin"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the admin credential endpoints. These live under
// /admin but take no token; everything else under /admin does.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/admin/register", adminController.RegisterAdmin(db))
	api.POST("/admin/login", adminController.LoginAdmin(db))
	api.POST("/admin/logout", adminController.LogoutAdmin())
}

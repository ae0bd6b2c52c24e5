package routes

import (
	cartControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/cart"
	"github.com/Rifaque/Bhatkal-Time-Luxe/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the session-scoped cart endpoints. The session
// middleware resolves (or allocates) the cart id before any handler runs.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, sessionStore sessions.Store) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.CartSession(sessionStore))
	{
		cartGroup.GET("", cartControllers.GetCart(db))                      // GET /cart
		cartGroup.GET("/total", cartControllers.GetCartTotal(db))           // GET /cart/total
		cartGroup.POST("", cartControllers.AddCartItem(db))                 // POST /cart
		cartGroup.PUT("/:productId", cartControllers.UpdateCartItem(db))    // PUT /cart/:productId
		cartGroup.DELETE("/:productId", cartControllers.DeleteCartItem(db)) // DELETE /cart/:productId
		cartGroup.DELETE("", cartControllers.ClearUserCart(db))             // DELETE /cart
		cartGroup.GET("/checkout", cartControllers.CheckoutCartHandler(db)) // GET /cart/checkout
	}
}

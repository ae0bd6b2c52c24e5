package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	cache "github.com/patrickmn/go-cache"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"gorm.io/gorm"
)

// SetupRoutes wires the whole /api surface: public storefront reads,
// session-scoped cart routes, and the admin back office.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache, sessionStore sessions.Store) {
	api := r.Group("/api")
	api.Use(mgin.NewMiddleware(limiter.New(memory.NewStore(), limiter.Rate{
		Period: 5 * time.Minute,
		Limit:  100,
	})))

	SetupAuthRoutes(api, db)
	SetupPublicRoutes(api, db, store)
	SetupCartRoutes(api, db, sessionStore)
	SetupAdminRoutes(api, db, store)
}

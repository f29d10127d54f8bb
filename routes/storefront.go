package routes

import (
	dashboardControllers "github.com/aionsolution/storefront-api/controllers/dashboard"
	itemControllers "github.com/aionsolution/storefront-api/controllers/item"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStorefrontRoutes registers the public catalog endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", itemControllers.GetItems(db))                    // GET /?page=N
	r.GET("/products/:slug", itemControllers.GetItemBySlug(db)) // GET /products/:slug

	// websocket endpoint for real-time order updates
	r.GET("/dashboard/live", dashboardControllers.LiveOrdersHandler)
}

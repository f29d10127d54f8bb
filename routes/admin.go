package routes

import (
	itemControllers "github.com/aionsolution/storefront-api/controllers/item"
	"github.com/aionsolution/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		itemAdmin := adminGroup.Group("/items")
		{
			itemAdmin.POST("", itemControllers.CreateItem(db))
			itemAdmin.PUT("/:slug", itemControllers.UpdateItem(db))
		}

		adminGroup.GET("/orders", itemControllers.GetPlacedOrders(db))
	}
}

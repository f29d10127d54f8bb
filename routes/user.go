package routes

import (
	cartControllers "github.com/aionsolution/storefront-api/controllers/cart"
	checkoutControllers "github.com/aionsolution/storefront-api/controllers/checkout"
	dashboardControllers "github.com/aionsolution/storefront-api/controllers/dashboard"
	"github.com/aionsolution/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the login-required endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Cart ────────────────
		userGroup.POST("/add-to-cart/:slug", cartControllers.AddToCartHandler(db))
		userGroup.POST("/remove-from-cart/:slug", cartControllers.RemoveFromCartHandler(db))
		userGroup.POST("/remove-item-from-cart/:slug", cartControllers.RemoveSingleItemHandler(db))
		userGroup.GET("/order-summary", cartControllers.OrderSummaryHandler(db))

		// ──────────────── Checkout ────────────────
		userGroup.GET("/checkout", checkoutControllers.GetCheckoutHandler(db))
		userGroup.POST("/checkout", checkoutControllers.PostCheckoutHandler(db))

		// ──────────────── Seller Dashboard ────────────────
		userGroup.GET("/dashboard", dashboardControllers.DashboardHandler(db))
		userGroup.GET("/dashboard/export", dashboardControllers.ExportSalesToExcel(db))
	}
}

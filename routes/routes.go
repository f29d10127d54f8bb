package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront, the
// JWT-protected cart/checkout/dashboard group, and the admin group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog (no middleware)
	SetupStorefrontRoutes(r, db)

	// Cart, checkout and seller dashboard (JWT-protected)
	SetupUserRoutes(r, db)

	// Item and order management (API-key-protected)
	SetupAdminRoutes(r, db)
}

package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/aionsolution/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrNoStock       = errors.New("no enough stock")
	ErrNoActiveOrder = errors.New("no active order")
	ErrNotInCart     = errors.New("item not in cart")
)

// newOrderRef builds a unique order reference, e.g. 20250908130500-<uuid4>.
func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// AddToCart adds one unit of the item to the user's open order, creating the
// order and the line lazily. Returns true when a new line was created and
// false when an existing line's quantity was incremented. The stock decrement
// is a guarded atomic update so two concurrent adds cannot oversell, and the
// whole mutation runs in one transaction: a failure leaves no partial state.
func AddToCart(db *gorm.DB, userID, slug string) (bool, error) {
	var created bool
	err := db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Where("slug = ?", slug).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		var order models.Order
		err := tx.Where("user_id = ? AND ordered = ?", userID, false).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			order = models.Order{
				UserID:    userID,
				Ref:       newOrderRef(),
				StartDate: time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		// stock = stock - 1, only while stock > 0
		res := tx.Model(&models.Item{}).
			Where("id = ? AND stock > 0", item.ID).
			UpdateColumn("stock", gorm.Expr("stock - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoStock
		}

		var line models.OrderItem
		err = tx.Where("order_id = ? AND item_id = ? AND ordered = ?", order.ID, item.ID, false).
			First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line = models.OrderItem{
				OrderID:   order.ID,
				UserID:    userID,
				ItemID:    item.ID,
				Quantity:  1,
				SellPrice: item.Price,
				AddedAt:   time.Now(),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			created = true
			return nil
		} else if err != nil {
			return err
		}

		return tx.Model(&line).
			UpdateColumn("quantity", gorm.Expr("quantity + 1")).Error
	})
	return created, err
}

// RemoveFromCart deletes the item's whole line from the user's open order and
// restores the full line quantity to the item's stock.
func RemoveFromCart(db *gorm.DB, userID, slug string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		item, line, err := openLine(tx, userID, slug)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).
			UpdateColumn("stock", gorm.Expr("stock + ?", line.Quantity)).Error; err != nil {
			return err
		}
		return tx.Delete(&line).Error
	})
}

// RemoveSingleItem removes one unit of the item from the user's open order:
// quantities above one are decremented, a last unit deletes the line. Exactly
// one unit goes back to stock either way.
func RemoveSingleItem(db *gorm.DB, userID, slug string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		item, line, err := openLine(tx, userID, slug)
		if err != nil {
			return err
		}

		if line.Quantity > 1 {
			if err := tx.Model(&line).
				UpdateColumn("quantity", gorm.Expr("quantity - 1")).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Delete(&line).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Item{}).Where("id = ?", item.ID).
			UpdateColumn("stock", gorm.Expr("stock + 1")).Error
	})
}

// openLine resolves the item, the user's open order and the line for the item
// within it, mapping each missing step to its sentinel.
func openLine(tx *gorm.DB, userID, slug string) (models.Item, models.OrderItem, error) {
	var item models.Item
	if err := tx.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, models.OrderItem{}, ErrItemNotFound
		}
		return item, models.OrderItem{}, err
	}

	var order models.Order
	if err := tx.Where("user_id = ? AND ordered = ?", userID, false).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, models.OrderItem{}, ErrNoActiveOrder
		}
		return item, models.OrderItem{}, err
	}

	var line models.OrderItem
	if err := tx.Where("order_id = ? AND item_id = ? AND ordered = ?", order.ID, item.ID, false).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, models.OrderItem{}, ErrNotInCart
		}
		return item, models.OrderItem{}, err
	}
	return item, line, nil
}

// ReleaseStale releases open orders started before the cutoff: every line's
// quantity goes back to item stock and the order is deleted, one transaction
// per order. Returns how many orders were released.
func ReleaseStale(db *gorm.DB, cutoff time.Time) (int, error) {
	var stale []models.Order
	if err := db.Preload("Items").
		Where("ordered = ? AND start_date < ?", false, cutoff).
		Find(&stale).Error; err != nil {
		return 0, err
	}

	released := 0
	for _, order := range stale {
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, line := range order.Items {
				if err := tx.Model(&models.Item{}).Where("id = ?", line.ItemID).
					UpdateColumn("stock", gorm.Expr("stock + ?", line.Quantity)).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Order{}, order.ID).Error
		})
		if err != nil {
			return released, err
		}
		released++
	}
	return released, nil
}

// -------- Handlers --------

// POST /add-to-cart/:slug
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUser(c)
		if !ok {
			return
		}

		created, err := AddToCart(db, userID, c.Param("slug"))
		switch {
		case errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, ErrNoStock):
			c.JSON(http.StatusConflict, gin.H{
				"message":  "No enough stock!",
				"redirect": "/order-summary",
			})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		case created:
			c.JSON(http.StatusOK, gin.H{
				"message":  "This item was added to your cart.",
				"redirect": "/order-summary",
			})
		default:
			c.JSON(http.StatusOK, gin.H{
				"message":  "This item quantity was updated.",
				"redirect": "/order-summary",
			})
		}
	}
}

// POST /remove-from-cart/:slug
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUser(c)
		if !ok {
			return
		}

		slug := c.Param("slug")
		err := RemoveFromCart(db, userID, slug)
		respondRemoval(c, slug, err, "This item was removed from your cart.")
	}
}

// POST /remove-item-from-cart/:slug
func RemoveSingleItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUser(c)
		if !ok {
			return
		}

		slug := c.Param("slug")
		err := RemoveSingleItem(db, userID, slug)
		respondRemoval(c, slug, err, "This item quantity was updated.")
	}
}

// GET /order-summary
func OrderSummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUser(c)
		if !ok {
			return
		}

		var order models.Order
		err := db.Preload("Items.Item").Preload("ShippingAddress").
			Where("user_id = ? AND ordered = ?", userID, false).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{
					"message":  "You do not have an active order",
					"redirect": "/",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order, "total": order.Total()})
	}
}

// Missing order and missing line are advisory no-ops, not errors; only an
// unknown slug is a 404.
func respondRemoval(c *gin.Context, slug string, err error, success string) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, ErrNoActiveOrder):
		c.JSON(http.StatusOK, gin.H{
			"message":  "You do not have an active order",
			"redirect": "/products/" + slug,
		})
	case errors.Is(err, ErrNotInCart):
		c.JSON(http.StatusOK, gin.H{
			"message":  "This item was not in your cart",
			"redirect": "/products/" + slug,
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":  success,
			"redirect": "/order-summary",
		})
	}
}

// CurrentUser pulls the user id the auth middleware stored on the context.
func CurrentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

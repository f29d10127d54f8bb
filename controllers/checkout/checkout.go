package checkoutControllers

import (
	"errors"
	"net/http"
	"time"

	cartControllers "github.com/aionsolution/storefront-api/controllers/cart"
	dashboardControllers "github.com/aionsolution/storefront-api/controllers/dashboard"
	paymentControllers "github.com/aionsolution/storefront-api/controllers/payment"
	"github.com/aionsolution/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrNoDefaultAddress  = errors.New("no default shipping address")
	ErrIncompleteAddress = errors.New("incomplete shipping address")
)

// CheckoutForm carries either a request to reuse the default shipping address
// or a full new address, plus the payment contact fields.
type CheckoutForm struct {
	UseDefaultShipping bool   `json:"use_default_shipping"`
	StreetAddress      string `json:"street_address"`
	ApartmentAddress   string `json:"apartment_address"`
	Country            string `json:"country"`
	Zip                string `json:"zip"`
	SetDefaultShipping bool   `json:"set_default_shipping"`
	Email              string `json:"email" binding:"required,email"`
	CPF                string `json:"cpf" binding:"required,max=11"`
}

func isValidForm(values ...string) bool {
	for _, field := range values {
		if field == "" {
			return false
		}
	}
	return true
}

// Complete finalizes the user's open order: it resolves or persists the
// shipping address, stamps the payment fields and flips the order and all of
// its lines to ordered, in a single transaction. The payment session ref is
// obtained before the transaction so a gateway failure leaves the cart open.
func Complete(db *gorm.DB, userID string, form CheckoutForm) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items.Item").
		Where("user_id = ? AND ordered = ?", userID, false).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cartControllers.ErrNoActiveOrder
		}
		return nil, err
	}

	session, err := paymentControllers.CreateSession(order.Ref, order.Total(), form.Email)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var shipping models.Address

		if form.UseDefaultShipping {
			err := tx.Where("user_id = ? AND is_default = ?", userID, true).
				First(&shipping).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoDefaultAddress
			} else if err != nil {
				return err
			}
		} else {
			// apartment is the only optional field
			if !isValidForm(form.StreetAddress, form.Country, form.Zip) {
				return ErrIncompleteAddress
			}

			shipping = models.Address{
				UserID:           userID,
				StreetAddress:    form.StreetAddress,
				ApartmentAddress: form.ApartmentAddress,
				Country:          form.Country,
				Zip:              form.Zip,
			}
			if form.SetDefaultShipping {
				// unset-then-set keeps at most one default per user
				if err := tx.Model(&models.Address{}).
					Where("user_id = ? AND is_default = ?", userID, true).
					UpdateColumn("is_default", false).Error; err != nil {
					return err
				}
				shipping.IsDefault = true
			}
			if err := tx.Create(&shipping).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"shipping_address_id": shipping.ID,
			"email":               form.Email,
			"cpf":                 form.CPF,
			"payment_ref":         session.Ref,
			"ordered":             true,
			"ordered_date":        now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.OrderItem{}).
			Where("order_id = ?", order.ID).
			Update("ordered", true).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items.Item").Preload("ShippingAddress").
		First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GET /checkout
func GetCheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.CurrentUser(c)
		if !ok {
			return
		}

		var order models.Order
		err := db.Preload("Items.Item").
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

		resp := gin.H{"order": order, "total": order.Total()}

		var def models.Address
		if err := db.Where("user_id = ? AND is_default = ?", userID, true).
			First(&def).Error; err == nil {
			resp["default_shipping_address"] = def
		}

		c.JSON(http.StatusOK, resp)
	}
}

// POST /checkout
func PostCheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.CurrentUser(c)
		if !ok {
			return
		}

		var form CheckoutForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := Complete(db, userID, form)
		switch {
		case errors.Is(err, cartControllers.ErrNoActiveOrder):
			c.JSON(http.StatusOK, gin.H{
				"message":  "You do not have an active order",
				"redirect": "/order-summary",
			})
		case errors.Is(err, ErrNoDefaultAddress):
			c.JSON(http.StatusBadRequest, gin.H{
				"message":  "No default shipping address available",
				"redirect": "/checkout",
			})
		case errors.Is(err, ErrIncompleteAddress):
			c.JSON(http.StatusBadRequest, gin.H{
				"message":  "Please fill in the required shipping address fields",
				"redirect": "/checkout",
			})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		default:
			dashboardControllers.BroadcastOrderPlaced(*order)
			c.JSON(http.StatusOK, gin.H{
				"message":  "Order placed successfully",
				"order":    order,
				"redirect": "/",
			})
		}
	}
}

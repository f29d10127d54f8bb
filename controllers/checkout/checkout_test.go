package checkoutControllers

import (
	"fmt"
	"testing"

	cartControllers "github.com/aionsolution/storefront-api/controllers/cart"
	"github.com/aionsolution/storefront-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedCart(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	item := models.Item{
		Title:    "Shirt",
		Slug:     "shirt-" + userID,
		Price:    25,
		Category: models.CategoryShirt,
		Stock:    10,
	}
	require.NoError(t, db.Create(&item).Error)
	for i := 0; i < 2; i++ {
		_, err := cartControllers.AddToCart(db, userID, item.Slug)
		require.NoError(t, err)
	}
}

func newAddressForm() CheckoutForm {
	return CheckoutForm{
		StreetAddress: "Rua das Flores 100",
		Country:       "BR",
		Zip:           "01310-100",
		Email:         "buyer@example.com",
		CPF:           "12345678901",
	}
}

func TestCompleteWithNewAddress(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "user-1")

	order, err := Complete(db, "user-1", newAddressForm())
	require.NoError(t, err)

	require.True(t, order.Ordered)
	require.NotNil(t, order.OrderedDate)
	require.Equal(t, "buyer@example.com", order.Email)
	require.Equal(t, "12345678901", order.CPF)
	require.NotEmpty(t, order.PaymentRef)
	require.NotNil(t, order.ShippingAddress)
	require.Equal(t, "Rua das Flores 100", order.ShippingAddress.StreetAddress)

	// every line flipped with the order, none left behind
	require.NotEmpty(t, order.Items)
	for _, line := range order.Items {
		require.True(t, line.Ordered)
	}
	var open int64
	require.NoError(t, db.Model(&models.OrderItem{}).
		Where("user_id = ? AND ordered = ?", "user-1", false).
		Count(&open).Error)
	require.EqualValues(t, 0, open)

	// cart is gone
	err = db.Where("user_id = ? AND ordered = ?", "user-1", false).
		First(&models.Order{}).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompleteWithDefaultAddress(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "user-1")

	def := models.Address{
		UserID:        "user-1",
		StreetAddress: "Av. Paulista 1000",
		Country:       "BR",
		Zip:           "01311-000",
		IsDefault:     true,
	}
	require.NoError(t, db.Create(&def).Error)

	form := CheckoutForm{
		UseDefaultShipping: true,
		Email:              "buyer@example.com",
		CPF:                "12345678901",
	}
	order, err := Complete(db, "user-1", form)
	require.NoError(t, err)
	require.NotNil(t, order.ShippingAddressID)
	require.Equal(t, def.ID, *order.ShippingAddressID)
}

func TestCompleteDefaultShippingMissing(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "user-1")

	form := CheckoutForm{
		UseDefaultShipping: true,
		Email:              "buyer@example.com",
		CPF:                "12345678901",
	}
	_, err := Complete(db, "user-1", form)
	require.ErrorIs(t, err, ErrNoDefaultAddress)

	// the order is still an open cart, untouched
	var order models.Order
	require.NoError(t, db.Where("user_id = ?", "user-1").First(&order).Error)
	require.False(t, order.Ordered)
	require.Nil(t, order.ShippingAddressID)
	require.Empty(t, order.Email)
}

func TestCompleteIncompleteAddressAborts(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "user-1")

	form := newAddressForm()
	form.Zip = ""
	_, err := Complete(db, "user-1", form)
	require.ErrorIs(t, err, ErrIncompleteAddress)

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", "user-1").First(&order).Error)
	require.False(t, order.Ordered)

	var addresses int64
	require.NoError(t, db.Model(&models.Address{}).Count(&addresses).Error)
	require.EqualValues(t, 0, addresses)
}

func TestCompleteApartmentIsOptional(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "user-1")

	form := newAddressForm()
	form.ApartmentAddress = ""
	order, err := Complete(db, "user-1", form)
	require.NoError(t, err)
	require.True(t, order.Ordered)
}

func TestCompleteSetDefaultUnsetsPrior(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "user-1")

	prior := models.Address{
		UserID:        "user-1",
		StreetAddress: "Old Street 1",
		Country:       "BR",
		Zip:           "00000-000",
		IsDefault:     true,
	}
	require.NoError(t, db.Create(&prior).Error)

	form := newAddressForm()
	form.SetDefaultShipping = true
	order, err := Complete(db, "user-1", form)
	require.NoError(t, err)
	require.True(t, order.ShippingAddress.IsDefault)

	var defaults int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", "user-1", true).
		Count(&defaults).Error)
	require.EqualValues(t, 1, defaults)
}

func TestCompleteNoActiveOrder(t *testing.T) {
	db := newTestDB(t)

	_, err := Complete(db, "user-1", newAddressForm())
	require.ErrorIs(t, err, cartControllers.ErrNoActiveOrder)
}
